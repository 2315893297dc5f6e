package model

import "strings"

// Kind is the closed set of element types the checker understands.
type Kind int

const (
	KindOther Kind = iota
	KindApplication
	KindGroup
	KindWindow
	KindSheet
	KindAlert
	KindDialog
	KindButton
	KindRadioButton
	KindCheckBox
	KindPopUpButton
	KindComboBox
	KindMenuButton
	KindToolbarButton
	KindPopover
	KindKeyboard
	KindKey
	KindNavigationBar
	KindTabBar
	KindTabGroup
	KindToolbar
	KindStatusBar
	KindTable
	KindCollectionView
	KindSlider
	KindPageIndicator
	KindProgressIndicator
	KindActivityIndicator
	KindSegmentedControl
	KindPicker
	KindPickerWheel
	KindSwitch
	KindToggle
	KindLink
	KindImage
	KindIcon
	KindSearchField
	KindScrollView
	KindScrollBar
	KindStaticText
	KindTextField
	KindSecureTextField
	KindDatePicker
	KindTextView
	KindMenu
	KindMenuItem
	KindMenuBar
	KindMap
	KindWebView
	KindCell
	KindStepper
	KindTab
)

type kindInfo struct {
	name    string // canonical name, used in snapshots and dumps
	display string // human name, used in messages
}

var kinds = [...]kindInfo{
	KindOther:             {"other", "Other"},
	KindApplication:       {"application", "Other"},
	KindGroup:             {"group", "Other"},
	KindWindow:            {"window", "Other"},
	KindSheet:             {"sheet", "Other"},
	KindAlert:             {"alert", "Alert"},
	KindDialog:            {"dialog", "Dialog"},
	KindButton:            {"button", "Button"},
	KindRadioButton:       {"radioButton", "Other"},
	KindCheckBox:          {"checkBox", "Other"},
	KindPopUpButton:       {"popUpButton", "Other"},
	KindComboBox:          {"comboBox", "Other"},
	KindMenuButton:        {"menuButton", "Other"},
	KindToolbarButton:     {"toolbarButton", "Other"},
	KindPopover:           {"popover", "Other"},
	KindKeyboard:          {"keyboard", "Other"},
	KindKey:               {"key", "Other"},
	KindNavigationBar:     {"navigationBar", "Other"},
	KindTabBar:            {"tabBar", "Other"},
	KindTabGroup:          {"tabGroup", "Other"},
	KindToolbar:           {"toolbar", "Other"},
	KindStatusBar:         {"statusBar", "Other"},
	KindTable:             {"table", "Other"},
	KindCollectionView:    {"collectionView", "Other"},
	KindSlider:            {"slider", "Slider"},
	KindPageIndicator:     {"pageIndicator", "Page Indicator"},
	KindProgressIndicator: {"progressIndicator", "Progress Indicator"},
	KindActivityIndicator: {"activityIndicator", "Activity Indicator"},
	KindSegmentedControl:  {"segmentedControl", "Segmented Control"},
	KindPicker:            {"picker", "Picker"},
	KindPickerWheel:       {"pickerWheel", "Picker Wheel"},
	KindSwitch:            {"switch", "Switch"},
	KindToggle:            {"toggle", "Other"},
	KindLink:              {"link", "Link"},
	KindImage:             {"image", "Image"},
	KindIcon:              {"icon", "Other"},
	KindSearchField:       {"searchField", "Search Field"},
	KindScrollView:        {"scrollView", "Other"},
	KindScrollBar:         {"scrollBar", "Other"},
	KindStaticText:        {"staticText", "Label"},
	KindTextField:         {"textField", "Text Field"},
	KindSecureTextField:   {"secureTextField", "Secure Text Field"},
	KindDatePicker:        {"datePicker", "Date Picker"},
	KindTextView:          {"textView", "Text View"},
	KindMenu:              {"menu", "Other"},
	KindMenuItem:          {"menuItem", "Other"},
	KindMenuBar:           {"menuBar", "Other"},
	KindMap:               {"map", "Other"},
	KindWebView:           {"webView", "Other"},
	KindCell:              {"cell", "Cell"},
	KindStepper:           {"stepper", "Stepper"},
	KindTab:               {"tab", "Other"},
}

// RoleMap maps platform accessibility roles and compact role codes to kinds.
var RoleMap = map[string]Kind{
	"AXButton":            KindButton,
	"AXStaticText":        KindStaticText,
	"AXHeading":           KindStaticText,
	"AXLink":              KindLink,
	"AXImage":             KindImage,
	"AXTextField":         KindTextField,
	"AXSecureTextField":   KindSecureTextField,
	"AXSearchField":       KindSearchField,
	"AXTextArea":          KindTextView,
	"AXCheckBox":          KindCheckBox,
	"AXSwitch":            KindSwitch,
	"AXRadioButton":       KindRadioButton,
	"AXPopUpButton":       KindPopUpButton,
	"AXComboBox":          KindComboBox,
	"AXMenuButton":        KindMenuButton,
	"AXSlider":            KindSlider,
	"AXIncrementor":       KindStepper,
	"AXDateField":         KindDatePicker,
	"AXProgressIndicator": KindProgressIndicator,
	"AXBusyIndicator":     KindActivityIndicator,
	"AXPageIndicator":     KindPageIndicator,
	"AXMenu":              KindMenu,
	"AXMenuBar":           KindMenuBar,
	"AXMenuItem":          KindMenuItem,
	"AXTabGroup":          KindTabGroup,
	"AXList":              KindTable,
	"AXTable":             KindTable,
	"AXOutline":           KindTable,
	"AXRow":               KindCell,
	"AXCell":              KindCell,
	"AXGroup":             KindGroup,
	"AXSplitGroup":        KindGroup,
	"AXScrollArea":        KindScrollView,
	"AXScrollBar":         KindScrollBar,
	"AXToolbar":           KindToolbar,
	"AXWebArea":           KindWebView,
	"AXSheet":             KindSheet,
	"AXWindow":            KindWindow,
	"AXApplication":       KindApplication,

	"btn":      KindButton,
	"txt":      KindStaticText,
	"lnk":      KindLink,
	"img":      KindImage,
	"input":    KindTextField,
	"chk":      KindCheckBox,
	"radio":    KindRadioButton,
	"menuitem": KindMenuItem,
	"list":     KindTable,
	"row":      KindCell,
	"scroll":   KindScrollView,
	"web":      KindWebView,
}

var kindsByName = func() map[string]Kind {
	m := make(map[string]Kind, len(kinds))
	for k, info := range kinds {
		m[strings.ToLower(info.name)] = Kind(k)
	}
	return m
}()

// ParseKind resolves a raw type string. Canonical names match
// case-insensitively; unknown types map to KindOther.
func ParseKind(raw string) Kind {
	if k, ok := RoleMap[raw]; ok {
		return k
	}
	if k, ok := kindsByName[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return k
	}
	return KindOther
}

// String returns the canonical kind name.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kinds) {
		return kinds[KindOther].name
	}
	return kinds[k].name
}

// DisplayName returns the human name used in messages.
func (k Kind) DisplayName() string {
	if k < 0 || int(k) >= len(kinds) {
		return kinds[KindOther].display
	}
	return kinds[k].display
}
