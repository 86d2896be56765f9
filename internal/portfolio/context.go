package portfolio

import (
	"fmt"
	"strings"

	"github.com/estateflow/estateflow/internal/store"
)

// ContextSummary serializes the portfolio state into the Korean context block
// fed to the advisory collaborator: headline counts, the property list, and
// tenant-to-unit-to-property name triples. Dangling references render as
// blank names rather than failing.
func ContextSummary(snap store.Snapshot) string {
	var b strings.Builder

	b.WriteString("[기본 정보]\n")
	fmt.Fprintf(&b, "현재 관리 건물 수: %d개\n", len(snap.Properties))
	fmt.Fprintf(&b, "현재 관리 호실 수: %d개\n", len(snap.Units))
	fmt.Fprintf(&b, "현재 입주 임차인 수: %d명\n", len(snap.Tenants))
	fmt.Fprintf(&b, "현재 미납 건수: %d건\n", OverdueCount(snap.Payments))

	b.WriteString("\n[건물 목록]\n")
	for _, p := range snap.Properties {
		fmt.Fprintf(&b, "- %s (%s, %s)\n", p.Name, p.Type, p.Address)
	}

	b.WriteString("\n[임차인 목록 예시]\n")
	for _, t := range snap.Tenants {
		var unitName, propertyName string
		if u, ok := UnitByID(snap.Units, t.UnitID); ok {
			unitName = u.Name
			for _, p := range snap.Properties {
				if p.ID == u.PropertyID {
					propertyName = p.Name
					break
				}
			}
		}
		fmt.Fprintf(&b, "- %s %s: %s\n", propertyName, unitName, t.Name)
	}

	return b.String()
}
