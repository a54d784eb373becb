package application

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/SamanGhn/Cloudflare-Dashboard/internal/domain"
	"github.com/SamanGhn/Cloudflare-Dashboard/internal/ports"
)

// Incoming is one text event from the chat transport.
type Incoming struct {
	UserID   int64
	Username string
	Text     string
}

// Reply is the transport-agnostic outbound message: text plus an optional
// keyboard of selectable options.
type Reply struct {
	Text     string
	Keyboard [][]string
	Markdown bool
	OneTime  bool
}

// Conversation drives the menu-driven interaction: it maps (current state,
// input) to side effects and the next state, one event per user at a time.
type Conversation struct {
	store    ports.RecordStore
	log      ports.ChangeLog
	clock    ports.Clock
	admins   map[int64]struct{}
	sessions *sessionStore
	logger   *zap.Logger
}

func NewConversation(store ports.RecordStore, log ports.ChangeLog, clock ports.Clock, adminIDs []int64, logger *zap.Logger) *Conversation {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	admins := make(map[int64]struct{}, len(adminIDs))
	for _, id := range adminIDs {
		admins[id] = struct{}{}
	}

	return &Conversation{
		store:    store,
		log:      log,
		clock:    clock,
		admins:   admins,
		sessions: newSessionStore(),
		logger:   logger,
	}
}

// Handle processes one inbound event and returns the reply. Non-admins are
// rejected before any session exists or any remote call is made.
func (c *Conversation) Handle(ctx context.Context, in Incoming) Reply {
	if _, ok := c.admins[in.UserID]; !ok {
		c.logger.Warn("rejected non-admin user", zap.Int64("user_id", in.UserID))
		return Reply{Text: "⛔ You are not allowed to use this bot."}
	}

	unlock := c.sessions.lock(in.UserID)
	defer unlock()

	text := strings.TrimSpace(in.Text)

	switch text {
	case "/start":
		sess := c.sessions.start(in.UserID, in.Username)
		return c.mainMenuReply(sess, welcomeText(in.Username))
	case "/cancel":
		sess := c.sessions.start(in.UserID, in.Username)
		return c.mainMenuReply(sess, "Operation cancelled.")
	}

	sess, ok := c.sessions.get(in.UserID)
	if !ok {
		return Reply{Text: "Send /start to begin."}
	}

	return c.dispatch(ctx, sess, text)
}

// dispatch is total over states: every input either transitions to a
// well-defined next state or re-renders the current one with an error.
func (c *Conversation) dispatch(ctx context.Context, sess *domain.Session, text string) Reply {
	switch sess.State {
	case domain.StateMainMenu:
		return c.mainMenu(ctx, sess, text)
	case domain.StateSelectDomain:
		return c.selectDomain(ctx, sess, text)
	case domain.StateSelectRecord:
		return c.selectRecord(sess, text)
	case domain.StateRecordActions:
		return c.recordActions(ctx, sess, text)
	case domain.StateEditContent:
		return c.editContent(ctx, sess, text)
	case domain.StateAddRecordDomain:
		return c.addRecordDomain(sess, text)
	case domain.StateAddRecordType:
		return c.addRecordType(sess, text)
	case domain.StateAddRecordName:
		return c.addRecordName(sess, text)
	case domain.StateAddRecordContent:
		return c.addRecordContent(ctx, sess, text)
	case domain.StateConfirmDelete:
		return c.confirmDelete(ctx, sess, text)
	case domain.StateSearchQuery:
		return c.searchQuery(ctx, sess, text)
	case domain.StateChangeTypeSelect:
		return c.changeTypeSelect(sess, text)
	case domain.StateChangeTypeContent:
		return c.changeTypeContent(ctx, sess, text)
	default:
		c.logger.Error("session in unknown state", zap.String("state", string(sess.State)), zap.Int64("user_id", sess.UserID))
		return c.mainMenuReply(sess, "Something went wrong, back to the main menu.")
	}
}

// mainMenuReply resets the session to the main menu and renders text with
// the top-level keyboard.
func (c *Conversation) mainMenuReply(sess *domain.Session, text string) Reply {
	sess.State = domain.StateMainMenu
	return Reply{Text: text, Keyboard: mainKeyboard(), Markdown: true}
}

func (c *Conversation) mainMenu(ctx context.Context, sess *domain.Session, text string) Reply {
	switch text {
	case btnDomains, btnNewRecord:
		zones, err := c.store.ListZones(ctx)
		if err != nil {
			c.logger.Error("list zones", zap.Error(err))
			return c.mainMenuReply(sess, "❌ "+err.Error())
		}
		if len(zones) == 0 {
			return c.mainMenuReply(sess, "❌ No domains found!")
		}
		sess.Zones = zones
		if text == btnDomains {
			sess.State = domain.StateSelectDomain
			return Reply{Text: "🔍 Select a domain:", Keyboard: zonesKeyboard(zones), OneTime: true}
		}
		sess.State = domain.StateAddRecordDomain
		return Reply{Text: "Select the domain for the new record:", Keyboard: zonesKeyboard(zones), OneTime: true}

	case btnSearch:
		sess.State = domain.StateSearchQuery
		return Reply{
			Text:     "🔍 Enter a search term:\n\nYou can search by record name or content.",
			Keyboard: cancelKeyboard(),
			OneTime:  true,
		}

	case btnReports:
		entries, err := c.log.Recent(15)
		if err != nil {
			c.logger.Error("read change log", zap.Error(err))
			return c.mainMenuReply(sess, "❌ Could not read the change log.")
		}
		if len(entries) == 0 {
			return c.mainMenuReply(sess, "📊 No changes recorded yet!")
		}
		return c.mainMenuReply(sess, changeReportText(entries))

	case btnStats:
		stats, err := c.collectStats(ctx)
		if err != nil {
			c.logger.Error("collect stats", zap.Error(err))
			return c.mainMenuReply(sess, "❌ "+err.Error())
		}
		return c.mainMenuReply(sess, statsText(stats))

	case btnHelp:
		return c.mainMenuReply(sess, helpText)
	}

	return c.mainMenuReply(sess, "❌ Unknown option, pick one from the menu.")
}

func (c *Conversation) collectStats(ctx context.Context) ([]zoneStats, error) {
	zones, err := c.store.ListZones(ctx)
	if err != nil {
		return nil, err
	}

	stats := make([]zoneStats, 0, len(zones))
	for _, z := range zones {
		records, err := c.store.ListRecords(ctx, z.ID, "")
		if err != nil {
			return nil, err
		}
		counts := make(map[string]int)
		for _, r := range records {
			counts[r.Type]++
		}
		stats = append(stats, zoneStats{zone: z, typeCounts: counts, total: len(records)})
	}
	return stats, nil
}

func (c *Conversation) selectDomain(ctx context.Context, sess *domain.Session, text string) Reply {
	if text == btnBackMenu {
		return c.mainMenuReply(sess, "Main menu:")
	}

	zone, ok := findZone(sess.Zones, strings.TrimPrefix(text, zonePrefix))
	if !ok {
		return Reply{Text: "❌ Domain not found!", Keyboard: zonesKeyboard(sess.Zones), OneTime: true}
	}

	records, err := c.store.ListRecords(ctx, zone.ID, "")
	if err != nil {
		c.logger.Error("list records", zap.Error(err), zap.String("zone", zone.Name))
		return Reply{Text: "❌ " + err.Error(), Keyboard: zonesKeyboard(sess.Zones), OneTime: true}
	}
	if len(records) == 0 {
		return Reply{Text: "❌ No records found!", Keyboard: zonesKeyboard(sess.Zones), OneTime: true}
	}

	sess.ZoneID = zone.ID
	sess.ZoneName = zone.Name
	sess.Records = records
	sess.Page = 1
	sess.State = domain.StateSelectRecord

	return c.recordPageReply(sess)
}

// recordPageReply renders the current page of the active zone's records.
func (c *Conversation) recordPageReply(sess *domain.Session) Reply {
	page := domain.Paginate(sess.Records, sess.Page, domain.DefaultPageSize)
	sess.Page = page.Number
	return Reply{
		Text:     recordsListText(sess.ZoneName, len(sess.Records)),
		Keyboard: recordsKeyboard(page, len(sess.Records)),
		Markdown: true,
		OneTime:  true,
	}
}

func (c *Conversation) selectRecord(sess *domain.Session, text string) Reply {
	switch {
	case text == btnPrevPage:
		sess.Page--
		return c.recordPageReply(sess)
	case text == btnNextPage:
		sess.Page++
		return c.recordPageReply(sess)
	case text == btnBackDomains:
		sess.State = domain.StateSelectDomain
		return Reply{Text: "🔍 Select a domain:", Keyboard: zonesKeyboard(sess.Zones), OneTime: true}
	case strings.HasPrefix(text, typeSeparatorPrefix),
		strings.HasPrefix(text, pageRowPrefix),
		strings.HasPrefix(text, totalRowPrefix):
		// Decorative rows are not selections.
		return c.recordPageReply(sess)
	}

	name := strings.TrimPrefix(strings.TrimPrefix(text, proxiedMark), unproxiedMark)
	for i := range sess.Records {
		if sess.Records[i].Name != name {
			continue
		}
		record := sess.Records[i]
		sess.Selected = &record
		sess.State = domain.StateRecordActions
		return Reply{
			Text:     recordDetailsText(record),
			Keyboard: recordActionsKeyboard(record.Type),
			Markdown: true,
			OneTime:  true,
		}
	}

	reply := c.recordPageReply(sess)
	reply.Text = "❌ Record not found!"
	reply.Markdown = false
	return reply
}

func (c *Conversation) recordActions(ctx context.Context, sess *domain.Session, text string) Reply {
	if text == btnBackRecords {
		sess.State = domain.StateSelectRecord
		return c.recordPageReply(sess)
	}

	record := sess.Selected
	if record == nil {
		return c.mainMenuReply(sess, "❌ No record selected.")
	}

	switch text {
	case btnEditContent:
		sess.State = domain.StateEditContent
		return Reply{
			Text: fmt.Sprintf("📝 Enter the new content:\n\nRecord type: *%s*\nExample: `%s`",
				record.Type, domain.ContentExample(record.Type)),
			Keyboard: cancelKeyboard(),
			Markdown: true,
			OneTime:  true,
		}

	case btnToggleProxy:
		if !domain.Proxiable(record.Type) {
			break
		}
		proxied := !record.Proxied
		if err := c.store.UpdateRecord(ctx, sess.ZoneID, record.ID, ports.RecordPatch{Proxied: &proxied}); err != nil {
			return Reply{Text: "❌ " + err.Error(), Keyboard: recordActionsKeyboard(record.Type), OneTime: true}
		}
		status := "DNS Only"
		if proxied {
			status = "Proxied"
		}
		c.logChange(sess, domain.ActionProxyToggle, sess.ZoneName, record.Name, "Changed to "+status)
		return c.mainMenuReply(sess, fmt.Sprintf("✅ Proxy status changed to %s!", status))

	case btnChangeType:
		sess.State = domain.StateChangeTypeSelect
		return Reply{
			Text:     fmt.Sprintf("🔄 *Change record type*\n\nCurrent type: `%s`\n\nSelect the new type:", record.Type),
			Keyboard: recordTypesKeyboard(),
			Markdown: true,
			OneTime:  true,
		}

	case btnDeleteRecord:
		sess.State = domain.StateConfirmDelete
		return Reply{Text: confirmDeleteText(*record), Keyboard: yesNoKeyboard(), Markdown: true, OneTime: true}
	}

	return Reply{Text: "❌ Unknown option, pick one from the menu.", Keyboard: recordActionsKeyboard(record.Type), OneTime: true}
}

func (c *Conversation) editContent(ctx context.Context, sess *domain.Session, text string) Reply {
	if text == btnCancel {
		return c.mainMenuReply(sess, "Operation cancelled.")
	}

	record := sess.Selected
	if record == nil {
		return c.mainMenuReply(sess, "❌ No record selected.")
	}

	content := text
	if err := c.store.UpdateRecord(ctx, sess.ZoneID, record.ID, ports.RecordPatch{Content: &content}); err != nil {
		return Reply{Text: "❌ " + err.Error() + "\n\nTry again:", Keyboard: cancelKeyboard(), OneTime: true}
	}

	c.logChange(sess, domain.ActionUpdate, sess.ZoneName, record.Name,
		fmt.Sprintf("Content changed from '%s' to '%s'", record.Content, content))
	return c.mainMenuReply(sess, "✅ Record updated!")
}

func (c *Conversation) addRecordDomain(sess *domain.Session, text string) Reply {
	if text == btnBackMenu {
		return c.mainMenuReply(sess, "Main menu:")
	}

	zone, ok := findZone(sess.Zones, strings.TrimPrefix(text, zonePrefix))
	if !ok {
		return Reply{Text: "❌ Domain not found!", Keyboard: zonesKeyboard(sess.Zones), OneTime: true}
	}

	sess.AddZoneID = zone.ID
	sess.AddZoneName = zone.Name
	sess.State = domain.StateAddRecordType
	return Reply{Text: "📝 Select the new record type:", Keyboard: recordTypesKeyboard(), OneTime: true}
}

func (c *Conversation) addRecordType(sess *domain.Session, text string) Reply {
	if text == btnCancel {
		return c.mainMenuReply(sess, "Operation cancelled.")
	}
	if !domain.ValidRecordType(text) {
		return Reply{Text: "❌ Invalid record type!", Keyboard: recordTypesKeyboard(), OneTime: true}
	}

	sess.AddType = text
	sess.State = domain.StateAddRecordName
	return Reply{
		Text: fmt.Sprintf("📝 *Creating %s record*\n\nEnter the record name:\nExample: `sub` or `sub.%s`\n\nUse @ for the zone apex.",
			text, sess.AddZoneName),
		Keyboard: cancelKeyboard(),
		Markdown: true,
		OneTime:  true,
	}
}

func (c *Conversation) addRecordName(sess *domain.Session, text string) Reply {
	if text == btnCancel {
		return c.mainMenuReply(sess, "Operation cancelled.")
	}

	sess.AddName = text
	sess.State = domain.StateAddRecordContent
	return Reply{
		Text: fmt.Sprintf("📝 Enter the %s record content:\n\nExample: `%s`",
			sess.AddType, domain.ContentExample(sess.AddType)),
		Keyboard: cancelKeyboard(),
		Markdown: true,
		OneTime:  true,
	}
}

func (c *Conversation) addRecordContent(ctx context.Context, sess *domain.Session, text string) Reply {
	if text == btnCancel {
		return c.mainMenuReply(sess, "Operation cancelled.")
	}

	record := domain.Record{
		Type:    sess.AddType,
		Name:    sess.AddName,
		Content: text,
		TTL:     domain.AutoTTL,
		Proxied: domain.Proxiable(sess.AddType),
	}

	if err := c.store.CreateRecord(ctx, sess.AddZoneID, record); err != nil {
		return Reply{Text: "❌ " + err.Error() + "\n\nTry again:", Keyboard: cancelKeyboard(), OneTime: true}
	}

	c.logChange(sess, domain.ActionCreate, sess.AddZoneName, record.Name,
		fmt.Sprintf("Type: %s, Content: %s", record.Type, record.Content))
	return c.mainMenuReply(sess, fmt.Sprintf("✅ Record created!\n\n🌐 Domain: %s\n🏷 Name: `%s`\n📌 Type: `%s`\n📋 Content: `%s`",
		sess.AddZoneName, record.Name, record.Type, record.Content))
}

func (c *Conversation) confirmDelete(ctx context.Context, sess *domain.Session, text string) Reply {
	switch text {
	case btnNo:
		return c.mainMenuReply(sess, "Operation cancelled.")

	case btnYes:
		record := sess.Selected
		if record == nil {
			return c.mainMenuReply(sess, "❌ No record selected.")
		}
		if err := c.store.DeleteRecord(ctx, sess.ZoneID, record.ID); err != nil {
			return c.mainMenuReply(sess, "❌ "+err.Error())
		}
		c.logChange(sess, domain.ActionDelete, sess.ZoneName, record.Name,
			fmt.Sprintf("Type: %s, Content: %s", record.Type, record.Content))
		return c.mainMenuReply(sess, fmt.Sprintf("✅ Record deleted!\n\n🏷 Name: `%s`\n📌 Type: `%s`", record.Name, record.Type))
	}

	return Reply{Text: "Please answer with the buttons.", Keyboard: yesNoKeyboard(), OneTime: true}
}

func (c *Conversation) searchQuery(ctx context.Context, sess *domain.Session, text string) Reply {
	if text == btnCancel {
		return c.mainMenuReply(sess, "Operation cancelled.")
	}

	matches, err := c.store.Search(ctx, text)
	if err != nil {
		c.logger.Error("search records", zap.Error(err))
		return c.mainMenuReply(sess, "❌ "+err.Error())
	}
	if len(matches) == 0 {
		return c.mainMenuReply(sess, "❌ No results found!")
	}

	return c.mainMenuReply(sess, searchResultsText(text, matches))
}

func (c *Conversation) changeTypeSelect(sess *domain.Session, text string) Reply {
	if text == btnCancel {
		return c.mainMenuReply(sess, "Operation cancelled.")
	}
	if !domain.ValidRecordType(text) {
		return Reply{Text: "❌ Invalid record type!", Keyboard: recordTypesKeyboard(), OneTime: true}
	}

	record := sess.Selected
	if record == nil {
		return c.mainMenuReply(sess, "❌ No record selected.")
	}
	if text == record.Type {
		return c.mainMenuReply(sess, "❌ The new type is the same as the current type!")
	}

	sess.NewType = text
	sess.State = domain.StateChangeTypeContent
	return Reply{
		Text: fmt.Sprintf("🔄 *Changing type from %s to %s*\n\nEnter the content for the %s record:\nExample: `%s`\n\n⚠️ The old content will be lost.",
			record.Type, text, text, domain.ContentExample(text)),
		Keyboard: cancelKeyboard(),
		Markdown: true,
		OneTime:  true,
	}
}

func (c *Conversation) changeTypeContent(ctx context.Context, sess *domain.Session, text string) Reply {
	if text == btnCancel {
		return c.mainMenuReply(sess, "Operation cancelled.")
	}

	record := sess.Selected
	if record == nil {
		return c.mainMenuReply(sess, "❌ No record selected.")
	}

	// The provider has no type-change operation, so this is a non-atomic
	// delete followed by a create. If the create fails the compensating
	// create below restores the old record, best effort.
	if err := c.store.DeleteRecord(ctx, sess.ZoneID, record.ID); err != nil {
		return c.mainMenuReply(sess, "❌ Could not delete the old record: "+err.Error())
	}

	replacement := domain.Record{
		Type:    sess.NewType,
		Name:    record.Name,
		Content: text,
		TTL:     domain.AutoTTL,
		Proxied: domain.Proxiable(sess.NewType) && record.Proxied,
	}

	if err := c.store.CreateRecord(ctx, sess.ZoneID, replacement); err != nil {
		if restoreErr := c.store.CreateRecord(ctx, sess.ZoneID, *record); restoreErr != nil {
			c.logger.Error("restore record after failed type change",
				zap.Error(restoreErr), zap.String("record", record.Name))
		}
		return c.mainMenuReply(sess, "❌ Could not create the new record: "+err.Error())
	}

	c.logChange(sess, domain.ActionUpdate, sess.ZoneName, record.Name,
		fmt.Sprintf("Type changed from %s to %s, New content: %s", record.Type, sess.NewType, text))
	return c.mainMenuReply(sess, fmt.Sprintf("✅ Record type changed!\n\n🏷 Name: `%s`\n📌 New type: `%s`\n📋 New content: `%s`",
		record.Name, sess.NewType, text))
}

// logChange appends one audit entry. Write failures go to the operator log,
// never to the end user.
func (c *Conversation) logChange(sess *domain.Session, action domain.Action, zoneName, recordName, details string) {
	entry := domain.ChangeEntry{
		Timestamp:  c.clock.Now().Format(domain.TimeLayout),
		UserID:     sess.UserID,
		Username:   sess.Username,
		Action:     action,
		Domain:     zoneName,
		RecordName: recordName,
		Details:    details,
	}
	if err := c.log.Append(entry); err != nil {
		c.logger.Error("append change log", zap.Error(err), zap.String("action", string(action)))
	}
}

func findZone(zones []domain.Zone, name string) (domain.Zone, bool) {
	for _, z := range zones {
		if z.Name == name {
			return z, true
		}
	}
	return domain.Zone{}, false
}
