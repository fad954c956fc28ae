// Package options holds the presentation configuration of screens and stacks
// and the layered merge used to resolve it.
//
// Every field is a Param, so each layer can tell "explicitly set" apart from
// "not mentioned". Options is a plain value: copying it copies every field,
// and every merge returns a new value without touching its inputs.
package options

// Options is the full configuration bag for a screen or a stack.
type Options struct {
	TopBar             TopBarOptions             `json:"topBar" yaml:"topBar" toml:"topBar"`
	Animations         AnimationsOptions         `json:"animations" yaml:"animations" toml:"animations"`
	Fab                FabOptions                `json:"fab" yaml:"fab" toml:"fab"`
	TopTabs            TopTabsOptions            `json:"topTabs" yaml:"topTabs" toml:"topTabs"`
	TopTab             TopTabOptions             `json:"topTab" yaml:"topTab" toml:"topTab"`
	BottomTabs         BottomTabsOptions         `json:"bottomTabs" yaml:"bottomTabs" toml:"bottomTabs"`
	Layout             LayoutOptions             `json:"layout" yaml:"layout" toml:"layout"`
	HardwareBackButton HardwareBackButtonOptions `json:"hardwareBackButton" yaml:"hardwareBackButton" toml:"hardwareBackButton"`
}

// Empty is the options value with nothing set.
var Empty = Options{}

// TopBarOptions configures the navigation bar shown above the top screen.
type TopBarOptions struct {
	Title      Text              `json:"title" yaml:"title" toml:"title"`
	Subtitle   Text              `json:"subtitle" yaml:"subtitle" toml:"subtitle"`
	Visible    Bool              `json:"visible" yaml:"visible" toml:"visible"`
	Animate    Bool              `json:"animate" yaml:"animate" toml:"animate"`
	DrawBehind Bool              `json:"drawBehind" yaml:"drawBehind" toml:"drawBehind"`
	Height     Number            `json:"height" yaml:"height" toml:"height"`
	BackButton BackButtonOptions `json:"backButton" yaml:"backButton" toml:"backButton"`
}

// BackButtonOptions configures the bar's back button.
type BackButtonOptions struct {
	Visible    Bool `json:"visible" yaml:"visible" toml:"visible"`
	PopOnPress Bool `json:"popStackOnPress" yaml:"popStackOnPress" toml:"popStackOnPress"`
	Text       Text `json:"title" yaml:"title" toml:"title"`
}

// AnimationsOptions holds one transition configuration per stack command.
type AnimationsOptions struct {
	Push         StackAnimationOptions `json:"push" yaml:"push" toml:"push"`
	Pop          StackAnimationOptions `json:"pop" yaml:"pop" toml:"pop"`
	SetStackRoot StackAnimationOptions `json:"setStackRoot" yaml:"setStackRoot" toml:"setStackRoot"`
}

// StackAnimationOptions parametrizes a single transition.
type StackAnimationOptions struct {
	Enabled       Bool   `json:"enabled" yaml:"enabled" toml:"enabled"`
	WaitForRender Bool   `json:"waitForRender" yaml:"waitForRender" toml:"waitForRender"`
	Duration      Number `json:"duration" yaml:"duration" toml:"duration"` // milliseconds
}

// FabOptions configures the floating action button.
type FabOptions struct {
	ID      Text `json:"id" yaml:"id" toml:"id"`
	Visible Bool `json:"visible" yaml:"visible" toml:"visible"`
	Icon    Text `json:"icon" yaml:"icon" toml:"icon"`
	Color   Text `json:"backgroundColor" yaml:"backgroundColor" toml:"backgroundColor"`
}

// TopTabsOptions configures the tab strip shown under the top bar.
type TopTabsOptions struct {
	Visible Bool   `json:"visible" yaml:"visible" toml:"visible"`
	Height  Number `json:"height" yaml:"height" toml:"height"`
}

// TopTabOptions configures a screen's own entry in the tab strip.
type TopTabOptions struct {
	Title Text `json:"title" yaml:"title" toml:"title"`
}

// BottomTabsOptions is consumed by an ancestor tabs container.
type BottomTabsOptions struct {
	Visible      Bool `json:"visible" yaml:"visible" toml:"visible"`
	CurrentTabID Text `json:"currentTabId" yaml:"currentTabId" toml:"currentTabId"`
}

// LayoutOptions holds concerns that every container level understands.
type LayoutOptions struct {
	BackgroundColor Text `json:"backgroundColor" yaml:"backgroundColor" toml:"backgroundColor"`
	Direction       Text `json:"direction" yaml:"direction" toml:"direction"` // ltr, rtl, locale
}

// HardwareBackButtonOptions decides what the hardware back action does.
type HardwareBackButtonOptions struct {
	PopStackOnPress Bool `json:"popStackOnPress" yaml:"popStackOnPress" toml:"popStackOnPress"`
}

func (o TopBarOptions) mergeWith(h TopBarOptions) TopBarOptions {
	return TopBarOptions{
		Title:      h.Title.Or(o.Title),
		Subtitle:   h.Subtitle.Or(o.Subtitle),
		Visible:    h.Visible.Or(o.Visible),
		Animate:    h.Animate.Or(o.Animate),
		DrawBehind: h.DrawBehind.Or(o.DrawBehind),
		Height:     h.Height.Or(o.Height),
		BackButton: BackButtonOptions{
			Visible:    h.BackButton.Visible.Or(o.BackButton.Visible),
			PopOnPress: h.BackButton.PopOnPress.Or(o.BackButton.PopOnPress),
			Text:       h.BackButton.Text.Or(o.BackButton.Text),
		},
	}
}

func (o StackAnimationOptions) mergeWith(h StackAnimationOptions) StackAnimationOptions {
	return StackAnimationOptions{
		Enabled:       h.Enabled.Or(o.Enabled),
		WaitForRender: h.WaitForRender.Or(o.WaitForRender),
		Duration:      h.Duration.Or(o.Duration),
	}
}

func (o FabOptions) mergeWith(h FabOptions) FabOptions {
	return FabOptions{
		ID:      h.ID.Or(o.ID),
		Visible: h.Visible.Or(o.Visible),
		Icon:    h.Icon.Or(o.Icon),
		Color:   h.Color.Or(o.Color),
	}
}

// HasValue reports whether any fab field is set.
func (o FabOptions) HasValue() bool {
	return o.ID.HasValue() || o.Visible.HasValue() || o.Icon.HasValue() || o.Color.HasValue()
}

// HasValue reports whether any top bar field is set.
func (o TopBarOptions) HasValue() bool {
	return o != TopBarOptions{}
}

// MergeWith returns a copy of o where every field set in higher replaces the
// corresponding field of o. Fields unset in higher fall through to o.
func (o Options) MergeWith(higher Options) Options {
	return Options{
		TopBar: o.TopBar.mergeWith(higher.TopBar),
		Animations: AnimationsOptions{
			Push:         o.Animations.Push.mergeWith(higher.Animations.Push),
			Pop:          o.Animations.Pop.mergeWith(higher.Animations.Pop),
			SetStackRoot: o.Animations.SetStackRoot.mergeWith(higher.Animations.SetStackRoot),
		},
		Fab: o.Fab.mergeWith(higher.Fab),
		TopTabs: TopTabsOptions{
			Visible: higher.TopTabs.Visible.Or(o.TopTabs.Visible),
			Height:  higher.TopTabs.Height.Or(o.TopTabs.Height),
		},
		TopTab: TopTabOptions{
			Title: higher.TopTab.Title.Or(o.TopTab.Title),
		},
		BottomTabs: BottomTabsOptions{
			Visible:      higher.BottomTabs.Visible.Or(o.BottomTabs.Visible),
			CurrentTabID: higher.BottomTabs.CurrentTabID.Or(o.BottomTabs.CurrentTabID),
		},
		Layout: LayoutOptions{
			BackgroundColor: higher.Layout.BackgroundColor.Or(o.Layout.BackgroundColor),
			Direction:       higher.Layout.Direction.Or(o.Layout.Direction),
		},
		HardwareBackButton: HardwareBackButtonOptions{
			PopStackOnPress: higher.HardwareBackButton.PopStackOnPress.Or(o.HardwareBackButton.PopStackOnPress),
		},
	}
}

// WithDefaultOptions returns o layered over defaults.
func (o Options) WithDefaultOptions(defaults Options) Options {
	return defaults.MergeWith(o)
}

// HasValue reports whether anything at all is set.
func (o Options) HasValue() bool {
	return o != Empty
}

func (o Options) ClearTopBar() Options {
	o.TopBar = TopBarOptions{}
	return o
}

func (o Options) ClearAnimations() Options {
	o.Animations = AnimationsOptions{}
	return o
}

func (o Options) ClearFab() Options {
	o.Fab = FabOptions{}
	return o
}

func (o Options) ClearTopTabs() Options {
	o.TopTabs = TopTabsOptions{}
	return o
}

func (o Options) ClearTopTab() Options {
	o.TopTab = TopTabOptions{}
	return o
}

// StackSanitized strips everything only a stack understands, leaving what
// ancestor containers may act on.
func (o Options) StackSanitized() Options {
	return o.ClearTopBar().
		ClearAnimations().
		ClearFab().
		ClearTopTab().
		ClearTopTabs()
}
