package configurator

import (
	"strings"
	"sync"
	"time"

	"github.com/matbaa/storefront-service/internal/model"
)

// snapshotDelay coalesces rapid edits before notifying the observer.
const snapshotDelay = 80 * time.Millisecond

// ownDesignValue shows the design hand-off flow in the UI when chosen.
const ownDesignValue = "لدى تصميم"

// systemLabels are legacy summary fields the old backend stored alongside
// real option groups; they are skipped when restoring a saved selection.
var systemLabels = []string{
	LabelSize,
	LabelColor,
	LabelMaterial,
	LabelPrintingMethod,
	LabelPrintLocation,
	LabelSizeQuantity,
	"سعر المقاس الإجمالي",
	"سعر الوحدة",
}

// SavedConfiguration is what the cart hands back for edit mode: the ids
// already resolved to names where the backend could, plus the stored
// name/value option rows (which may be in the legacy summary shape).
type SavedConfiguration struct {
	Size            string
	Color           string
	Material        string
	PrintingMethod  string
	PrintLocations  []string
	Quantity        *float64
	SelectedOptions []model.CartItemOption
}

// Form owns a Selection for one product schema. Setters mutate state and
// mark it dirty (meaningful in cart-item edit mode only); payload and
// price builders read consistent snapshots via Selection().
type Form struct {
	mu     sync.Mutex
	schema *model.OptionSchema
	groups []OptionGroup
	sel    Selection

	editing bool
	dirty   bool

	onChange      func(Selection)
	onDesignReset func()
	timer         *time.Timer
	window        time.Duration
}

func NewForm(schema *model.OptionSchema) *Form {
	f := &Form{
		schema: schema,
		groups: GroupOptions(schema.Options),
		window: snapshotDelay,
	}
	f.resetLocked()
	return f
}

// SetEditing enables dirty tracking, used when editing an already
// persisted cart item.
func (f *Form) SetEditing(editing bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.editing = editing
}

// OnChange registers a debounced observer. Each mutation re-arms the
// timer; only the last state within the window is delivered.
func (f *Form) OnChange(fn func(Selection)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.onChange = fn
}

// OnDesignReset is invoked whenever the design-service group value
// changes, so a pending design-file attachment can be discarded.
func (f *Form) OnDesignReset(fn func()) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.onDesignReset = fn
}

// Close cancels any pending change notification.
func (f *Form) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.timer != nil {
		f.timer.Stop()
		f.timer = nil
	}
}

func (f *Form) SetSize(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sel.Size = Normalize(name)
	// Tier facts belong to the previous size; drop all four together.
	f.sel.clearTierFields()
	f.markDirtyLocked()
	f.scheduleLocked()
}

// SetTier resolves the tier within the currently selected size; an id
// from another size (or an unknown id) clears the tier fields.
func (f *Form) SetTier(tierID int64) {
	f.mu.Lock()
	defer f.mu.Unlock()

	resolved := ResolveTier(FindSize(f.schema, f.sel.Size), tierID)
	if resolved == nil {
		f.sel.clearTierFields()
	} else {
		id := resolved.ID
		qty := float64(resolved.Quantity)
		unit := resolved.UnitPrice
		f.sel.SizeTierID = &id
		f.sel.SizeQuantity = &qty
		f.sel.SizePricePerUnit = &unit
		f.sel.SizeTotalPrice = resolved.TotalPrice
	}
	f.markDirtyLocked()
	f.scheduleLocked()
}

func (f *Form) SetColor(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sel.Color = Normalize(name)
	f.markDirtyLocked()
	f.scheduleLocked()
}

func (f *Form) SetMaterial(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sel.Material = Normalize(name)
	f.markDirtyLocked()
	f.scheduleLocked()
}

func (f *Form) SetPrintingMethod(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sel.PrintingMethod = Normalize(name)
	f.markDirtyLocked()
	f.scheduleLocked()
}

// SetOptionGroup sets the value of a known group; unknown group names
// are ignored.
func (f *Form) SetOptionGroup(group, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	group = strings.TrimSpace(group)
	if _, ok := f.sel.OptionGroups[group]; !ok {
		return
	}

	value = Normalize(value)
	prev := f.sel.OptionGroups[group]
	f.sel.OptionGroups[group] = value

	if prev != value && IsOneTimeService(group, "") && f.onDesignReset != nil {
		f.onDesignReset()
	}
	f.markDirtyLocked()
	f.scheduleLocked()
}

// SetPrintLocations replaces the selected locations, preserving order
// and dropping duplicates and placeholders.
func (f *Form) SetPrintLocations(names []string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	seen := map[string]bool{}
	out := make([]string, 0, len(names))
	for _, n := range names {
		n = Normalize(n)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	f.sel.PrintLocations = out
	f.markDirtyLocked()
	f.scheduleLocked()
}

// Reset returns every field to unselected, keeping the group keys.
func (f *Form) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resetLocked()
	f.markDirtyLocked()
	f.scheduleLocked()
}

// Selection returns a validated snapshot of the current state.
func (f *Form) Selection() Selection {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snapshotLocked()
}

func (f *Form) Validate() ValidationResult {
	f.mu.Lock()
	defer f.mu.Unlock()
	return Validate(f.schema, &f.sel)
}

func (f *Form) Dirty() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.dirty
}

// ClearDirty is called after a successful save.
func (f *Form) ClearDirty() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.dirty = false
}

// DesignServiceValue returns the chosen value of the design-service
// group, empty when none is chosen.
func (f *Form) DesignServiceValue() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, g := range f.groups {
		if IsOneTimeService(g.Name, "") {
			return Normalize(f.sel.OptionGroups[g.Name])
		}
	}
	return ""
}

// HasOwnDesign reports whether the customer declared they already have a
// design, which gates the file hand-off flow in the UI.
func (f *Form) HasOwnDesign() bool {
	return f.DesignServiceValue() == ownDesignValue
}

// Restore best-effort maps a previously saved configuration back into
// the selection. Legacy summary rows are consulted for scalar fields and
// skipped as groups; the tier is re-resolved by quantity when the saved
// row carries no tier id.
func (f *Form) Restore(saved *SavedConfiguration) {
	if saved == nil {
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	sizeName := firstValue(savedValue(saved.SelectedOptions, LabelSize), saved.Size)
	colorName := firstValue(savedValue(saved.SelectedOptions, LabelColor), saved.Color)
	materialName := firstValue(savedValue(saved.SelectedOptions, LabelMaterial), saved.Material)
	methodName := firstValue(savedValue(saved.SelectedOptions, LabelPrintingMethod), saved.PrintingMethod)

	f.sel.Size = Normalize(sizeName)
	f.sel.Color = Normalize(colorName)
	f.sel.Material = Normalize(materialName)
	f.sel.PrintingMethod = Normalize(methodName)

	locs := savedValues(saved.SelectedOptions, LabelPrintLocation)
	if len(locs) == 0 {
		locs = saved.PrintLocations
	}
	f.sel.PrintLocations = nil
	seen := map[string]bool{}
	for _, n := range locs {
		n = Normalize(n)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		f.sel.PrintLocations = append(f.sel.PrintLocations, n)
	}

	f.restoreTierLocked(saved)

	// Real groups only: every known group starts unselected, then saved
	// rows fill the ones they match. System labels never become groups.
	f.sel.OptionGroups = map[string]string{}
	for _, g := range f.groups {
		f.sel.OptionGroups[g.Name] = ""
	}
	for _, opt := range saved.SelectedOptions {
		name := strings.TrimSpace(opt.OptionName)
		value := strings.TrimSpace(opt.OptionValue)
		if name == "" || value == "" || isSystemLabel(name) {
			continue
		}
		if _, ok := f.sel.OptionGroups[name]; ok {
			f.sel.OptionGroups[name] = Normalize(value)
		}
	}

	f.dirty = false
	f.scheduleLocked()
}

func (f *Form) restoreTierLocked(saved *SavedConfiguration) {
	f.sel.clearTierFields()

	qty := Num(savedValue(saved.SelectedOptions, LabelSizeQuantity))
	if qty == 0 && saved.Quantity != nil {
		qty = Num(*saved.Quantity)
	}
	if qty <= 0 {
		return
	}

	savedTotal := Num(savedValue(saved.SelectedOptions, "سعر المقاس الإجمالي"))
	savedUnit := Num(savedValue(saved.SelectedOptions, "سعر الوحدة"))

	size := FindSize(f.schema, f.sel.Size)
	var tier *model.SizeTier
	if size != nil {
		for i := range size.Tiers {
			if float64(size.Tiers[i].Quantity) == qty {
				tier = &size.Tiers[i]
				break
			}
		}
	}

	unit := savedUnit
	backendTotal := 0.0
	if tier != nil {
		if u := Num(tier.PricePerUnit); u > 0 {
			unit = u
		}
		backendTotal = Num(tier.TotalPrice)
		id := tier.ID
		f.sel.SizeTierID = &id
		qty = float64(tier.Quantity)
	}

	f.sel.SizeQuantity = &qty
	if unit > 0 {
		f.sel.SizePricePerUnit = &unit
	}

	total := backendTotal
	if total <= 0 {
		total = savedTotal
	}
	if total <= 0 && unit > 0 {
		total = qty * unit
	}
	if total > 0 {
		f.sel.SizeTotalPrice = &total
	}
}

func (f *Form) resetLocked() {
	f.sel = Selection{
		OptionGroups:   map[string]string{},
		PrintLocations: []string{},
	}
	for _, g := range f.groups {
		f.sel.OptionGroups[g.Name] = ""
	}
}

func (f *Form) snapshotLocked() Selection {
	snap := f.sel.Clone()
	snap.IsValid = Validate(f.schema, &f.sel).IsValid
	return snap
}

func (f *Form) markDirtyLocked() {
	if f.editing {
		f.dirty = true
	}
}

// scheduleLocked (re)arms the debounce timer; last write wins.
func (f *Form) scheduleLocked() {
	if f.onChange == nil {
		return
	}
	if f.timer != nil {
		f.timer.Stop()
	}
	f.timer = time.AfterFunc(f.window, func() {
		f.mu.Lock()
		fn := f.onChange
		snap := f.snapshotLocked()
		f.mu.Unlock()
		if fn != nil {
			fn(snap)
		}
	})
}

func savedValue(opts []model.CartItemOption, label string) string {
	for _, opt := range opts {
		if strings.TrimSpace(opt.OptionName) == label {
			return strings.TrimSpace(opt.OptionValue)
		}
	}
	return ""
}

func savedValues(opts []model.CartItemOption, label string) []string {
	var out []string
	for _, opt := range opts {
		if strings.TrimSpace(opt.OptionName) == label {
			if v := strings.TrimSpace(opt.OptionValue); v != "" {
				out = append(out, v)
			}
		}
	}
	return out
}

func isSystemLabel(name string) bool {
	for _, l := range systemLabels {
		if name == l {
			return true
		}
	}
	return false
}

func firstValue(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
