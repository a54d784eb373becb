package application

import (
	"fmt"

	"github.com/SamanGhn/Cloudflare-Dashboard/internal/domain"
)

// Button labels. The transition logic matches against these exact strings,
// so keyboards and handlers must stay in sync.
const (
	btnDomains   = "🌐 Domains"
	btnNewRecord = "➕ New Record"
	btnSearch    = "🔍 Search"
	btnReports   = "📊 Reports"
	btnStats     = "📈 Stats"
	btnHelp      = "❓ Help"

	btnCancel      = "❌ Cancel"
	btnBackMenu    = "🔙 Back to menu"
	btnBackDomains = "🔙 Back to domains"
	btnBackRecords = "🔙 Back to records"

	btnPrevPage = "⬅️ Prev page"
	btnNextPage = "Next page ➡️"

	btnEditContent  = "✏️ Edit content"
	btnToggleProxy  = "🔄 Toggle proxy"
	btnChangeType   = "🔄 Change type"
	btnDeleteRecord = "🗑 Delete record"

	btnYes = "✅ Yes"
	btnNo  = "❌ No"

	zonePrefix    = "🌐 "
	proxiedMark   = "🟠 "
	unproxiedMark = "⚪ "

	typeSeparatorPrefix = "━━━ "
	pageRowPrefix       = "📄 Page "
	totalRowPrefix      = "📊 Total: "
)

func mainKeyboard() [][]string {
	return [][]string{
		{btnDomains, btnNewRecord},
		{btnSearch, btnReports},
		{btnStats, btnHelp},
	}
}

func cancelKeyboard() [][]string {
	return [][]string{{btnCancel}}
}

func zonesKeyboard(zones []domain.Zone) [][]string {
	rows := make([][]string, 0, len(zones)+1)
	for _, z := range zones {
		rows = append(rows, []string{zonePrefix + z.Name})
	}
	rows = append(rows, []string{btnBackMenu})
	return rows
}

// recordsKeyboard renders one page of records with a separator row per
// record type, navigation affordances, and a total row.
func recordsKeyboard(page domain.Page, total int) [][]string {
	var rows [][]string

	currentType := ""
	for _, r := range page.Records {
		if r.Type != currentType {
			rows = append(rows, []string{fmt.Sprintf("%s%s Records ━━━", typeSeparatorPrefix, r.Type)})
			currentType = r.Type
		}
		mark := unproxiedMark
		if r.Proxied {
			mark = proxiedMark
		}
		rows = append(rows, []string{mark + r.Name})
	}

	nav := make([]string, 0, 3)
	if page.HasPrev {
		nav = append(nav, btnPrevPage)
	}
	nav = append(nav, fmt.Sprintf("%s%d of %d", pageRowPrefix, page.Number, page.TotalPages))
	if page.HasNext {
		nav = append(nav, btnNextPage)
	}
	rows = append(rows, nav)

	rows = append(rows, []string{fmt.Sprintf("%s%d records", totalRowPrefix, total)})
	rows = append(rows, []string{btnBackDomains})
	return rows
}

// recordActionsKeyboard offers the proxy toggle only for proxiable types.
func recordActionsKeyboard(recordType string) [][]string {
	rows := [][]string{{btnEditContent}}
	if domain.Proxiable(recordType) {
		rows = append(rows, []string{btnToggleProxy})
	}
	rows = append(rows,
		[]string{btnChangeType},
		[]string{btnDeleteRecord},
		[]string{btnBackRecords},
	)
	return rows
}

func recordTypesKeyboard() [][]string {
	return [][]string{
		{"A", "AAAA", "CNAME"},
		{"MX", "TXT", "NS"},
		{"CAA", "SRV"},
		{btnCancel},
	}
}

func yesNoKeyboard() [][]string {
	return [][]string{{btnYes, btnNo}}
}
