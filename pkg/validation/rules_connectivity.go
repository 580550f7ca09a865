package validation

import (
	"sort"

	"github.com/dshills/pcbgen/pkg/board"
	"github.com/dshills/pcbgen/pkg/netlist"
)

// checkConnectivity reports every net that failed to route at all. The
// routing engine is atomic per net (it either connects every endpoint or
// commits no tracks for that net), so "no tracks for a multi-endpoint net"
// is both necessary and sufficient for a connectivity failure.
func checkConnectivity(b *board.Board, nl *netlist.Netlist, cfg *Config) []Issue {
	var issues []Issue
	for _, netID := range nl.IterNets() {
		net := nl.Nets[netID]
		if len(net.Endpoints) < 2 {
			continue
		}
		if len(b.TracksForNet(netID)) > 0 {
			continue
		}
		issues = append(issues, Issue{
			Severity:     SeverityCritical,
			Category:     CategoryConnectivity,
			Message:      "net " + netID + " has no routed copper connecting its endpoints",
			Suggestion:   "increase the routing search budget or relax clearance for this net and retry",
			AffectedNets: []string{netID},
		})
	}
	sort.Slice(issues, func(i, j int) bool { return issues[i].AffectedNets[0] < issues[j].AffectedNets[0] })
	return issues
}
