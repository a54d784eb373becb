package application

import (
	"fmt"
	"sort"
	"strings"

	"github.com/SamanGhn/Cloudflare-Dashboard/internal/domain"
)

var actionEmoji = map[domain.Action]string{
	domain.ActionCreate:      "➕",
	domain.ActionUpdate:      "✏️",
	domain.ActionDelete:      "🗑",
	domain.ActionProxyToggle: "🔄",
}

func welcomeText(username string) string {
	name := username
	if name == "" {
		name = "admin"
	}
	return fmt.Sprintf("🌐 *Cloudflare DNS Manager*\n\nHello %s! 👋\n\nPick an option from the menu below:", name)
}

const helpText = `❓ *How to use this bot*

*Commands:*
/start - restart the bot
/cancel - cancel the current operation

*Features:*
🌐 Browse domains and their DNS records, with pagination
✏️ Edit record content, change record type, toggle the proxy flag
➕ Create new records
🗑 Delete records
🔍 Search across all records by name or content
📊 Change reports and 📈 overall stats

All changes are written to the audit log.`

func recordsListText(zoneName string, total int) string {
	return fmt.Sprintf("📋 Records for *%s*\nTotal: %d records\n\nSelect a record:", zoneName, total)
}

func recordDetailsText(r domain.Record) string {
	var b strings.Builder
	b.WriteString("🔍 *Record details*\n\n")
	fmt.Fprintf(&b, "🏷 Name: `%s`\n", r.Name)
	fmt.Fprintf(&b, "📌 Type: `%s`\n", r.Type)
	fmt.Fprintf(&b, "📋 Content: `%s`\n", r.Content)
	if r.TTL == domain.AutoTTL {
		b.WriteString("⏱ TTL: Auto\n")
	} else {
		fmt.Fprintf(&b, "⏱ TTL: %d\n", r.TTL)
	}
	if domain.Proxiable(r.Type) {
		if r.Proxied {
			b.WriteString("🛡 Proxy: Proxied 🟠\n")
		} else {
			b.WriteString("🛡 Proxy: DNS only ⚪\n")
		}
	}
	b.WriteString("\nChoose an action:")
	return b.String()
}

func changeReportText(entries []domain.ChangeEntry) string {
	var b strings.Builder
	b.WriteString("📊 *Recent changes:*\n\n")
	for _, e := range entries {
		emoji, ok := actionEmoji[e.Action]
		if !ok {
			emoji = "📌"
		}
		fmt.Fprintf(&b, "%s %s\n", emoji, e.Timestamp)
		fmt.Fprintf(&b, "👤 %s\n", e.Username)
		fmt.Fprintf(&b, "🌐 %s - %s\n", e.Domain, e.RecordName)
		fmt.Fprintf(&b, "📝 %s\n\n", e.Details)
	}
	return strings.TrimRight(b.String(), "\n")
}

type zoneStats struct {
	zone       domain.Zone
	typeCounts map[string]int
	total      int
}

func statsText(stats []zoneStats) string {
	var b strings.Builder
	b.WriteString("📈 *System stats*\n\n")
	fmt.Fprintf(&b, "🌐 Domains: %d\n\n", len(stats))

	grandTotal := 0
	for _, zs := range stats {
		grandTotal += zs.total
		fmt.Fprintf(&b, "*%s:*\n", zs.zone.Name)

		types := make([]string, 0, len(zs.typeCounts))
		for t := range zs.typeCounts {
			types = append(types, t)
		}
		sort.Strings(types)
		for _, t := range types {
			fmt.Fprintf(&b, "  • %s: %d\n", t, zs.typeCounts[t])
		}
		fmt.Fprintf(&b, "  📊 Total: %d\n\n", zs.total)
	}

	fmt.Fprintf(&b, "💠 *Total records: %d*", grandTotal)
	return b.String()
}

const maxSearchResults = 10

func searchResultsText(term string, matches []domain.SearchMatch) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🔍 *Search results for: `%s`*\n\n", term)

	shown := matches
	if len(shown) > maxSearchResults {
		shown = shown[:maxSearchResults]
	}
	for i, m := range shown {
		mark := "⚪"
		if m.Record.Proxied {
			mark = "🟠"
		}
		fmt.Fprintf(&b, "%d. %s *%s*\n", i+1, mark, m.Record.Name)
		fmt.Fprintf(&b, "   🌐 Domain: %s\n", m.ZoneName)
		fmt.Fprintf(&b, "   📌 Type: %s\n", m.Record.Type)
		fmt.Fprintf(&b, "   📋 Content: `%s`\n\n", m.Record.Content)
	}

	if extra := len(matches) - maxSearchResults; extra > 0 {
		fmt.Fprintf(&b, "... and %d more", extra)
	}
	return strings.TrimRight(b.String(), "\n")
}

func confirmDeleteText(r domain.Record) string {
	return fmt.Sprintf("⚠️ *Delete this record?*\n\n🏷 Name: `%s`\n📌 Type: `%s`\n📋 Content: `%s`\n\nThis cannot be undone!",
		r.Name, r.Type, r.Content)
}
