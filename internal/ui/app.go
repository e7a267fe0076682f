// Package ui implements the interactive meander editor window: a parameter
// panel on the left and a live trace preview on the right. Every edit
// regenerates the pattern and refits it to the viewport within the same
// frame, so the preview never lags the fields.
package ui

import (
	"fmt"
	"image"
	"io"
	"log"
	"os"
	"sort"
	"strconv"
	"sync"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"gioui.org/x/explorer"
	"github.com/oligo/gioview/menu"
	"github.com/oligo/gioview/theme"
	"golang.org/x/exp/shiny/materialdesign/icons"

	"github.com/OpenTraceLab/MeanderTrace/pkg/preview"
	"github.com/OpenTraceLab/MeanderTrace/pkg/serpentine"
	"github.com/OpenTraceLab/MeanderTrace/pkg/serpentine/preset"
)

// PresetExtension is the file extension used by the preset picker dialogs.
const PresetExtension = "mtp"

const panelWidth = 280

// paramField binds one text editor to a parameter key.
type paramField struct {
	key    string
	label  string
	editor widget.Editor
}

// App owns the window, the parameter widgets and the current preview
// snapshot. All widget and snapshot state is mutated from the frame handler
// only; the preset picker goroutines hand results back through
// postParameters/postStatus, drained at the start of the next frame.
type App struct {
	window  *app.Window
	gvTheme *theme.Theme
	ops     op.Ops
	shaper  *text.Shaper
	files   *explorer.Explorer

	fields []*paramField
	noEdge widget.Bool

	openBtn  widget.Clickable
	saveBtn  widget.Clickable
	resetBtn widget.Clickable
	themeBtn widget.Clickable

	openIcon  *widget.Icon
	saveIcon  *widget.Icon
	resetIcon *widget.Icon
	themeIcon *widget.Icon

	themeMenu *menu.DropdownMenu

	params       serpentine.Parameters
	snapshot     preview.Snapshot
	viewportSize image.Point

	status string

	pendingMu     sync.Mutex
	pendingParams *serpentine.Parameters
	pendingStatus string
}

// NewAppWithWindow wires the widgets, loads the persisted theme and seeds the
// editors with the default parameters.
func NewAppWithWindow(w *app.Window) *App {
	a := &App{
		window: w,
		shaper: text.NewShaper(text.WithCollection(gofont.Collection())),
		files:  explorer.NewExplorer(w),
	}
	a.gvTheme = theme.NewTheme("", nil, true)

	a.openIcon, _ = widget.NewIcon(icons.FileFolderOpen)
	a.saveIcon, _ = widget.NewIcon(icons.ContentSave)
	a.resetIcon, _ = widget.NewIcon(icons.ActionAutorenew)
	a.themeIcon, _ = widget.NewIcon(icons.ImagePalette)

	a.fields = []*paramField{
		{key: serpentine.KeyRadius, label: "Radius (mm)"},
		{key: serpentine.KeyAmplitude, label: "Amplitude (mm)"},
		{key: serpentine.KeyAngle, label: "Angle (deg)"},
		{key: serpentine.KeyLength, label: "Lead length (mm)"},
		{key: serpentine.KeyPitch, label: "Pitch (mm)"},
		{key: serpentine.KeyFrontCount, label: "Front runs"},
		{key: serpentine.KeyFrontWidth, label: "Front width (mm)"},
		{key: serpentine.KeyBackCount, label: "Back runs"},
		{key: serpentine.KeyBackWidth, label: "Back width (mm)"},
	}
	for _, f := range a.fields {
		f.editor.SingleLine = true
	}
	a.themeMenu = a.buildThemeMenu()

	if config, err := LoadConfig(); err == nil {
		preview.SetTheme(preview.ColorTheme(config.ColorTheme))
	}

	a.setParameters(serpentine.DefaultParameters())
	a.status = "Ready"
	return a
}

// Run blocks processing window events until the window closes.
func (a *App) Run() error {
	for {
		e := a.window.Event()
		a.files.ListenEvents(e)
		switch ev := e.(type) {
		case app.DestroyEvent:
			return ev.Err
		case app.FrameEvent:
			gtx := app.NewContext(&a.ops, ev)
			a.layout(gtx)
			ev.Frame(gtx.Ops)
		}
	}
}

func (a *App) invalidate() {
	if a.window != nil {
		a.window.Invalidate()
	}
}

// postParameters hands a parameter set from a picker goroutine to the frame
// loop; drainPending applies it on the next frame.
func (a *App) postParameters(p serpentine.Parameters) {
	a.pendingMu.Lock()
	a.pendingParams = &p
	a.pendingMu.Unlock()
	a.invalidate()
}

// postStatus hands a status message from a picker goroutine to the frame
// loop.
func (a *App) postStatus(s string) {
	a.pendingMu.Lock()
	a.pendingStatus = s
	a.pendingMu.Unlock()
	a.invalidate()
}

// drainPending applies results posted by picker goroutines. Runs at the top
// of the frame handler so widget and snapshot state only ever changes there.
func (a *App) drainPending() {
	a.pendingMu.Lock()
	p := a.pendingParams
	s := a.pendingStatus
	a.pendingParams = nil
	a.pendingStatus = ""
	a.pendingMu.Unlock()

	if p != nil {
		a.setParameters(*p)
	}
	if s != "" {
		a.status = s
	}
}

// setParameters fills the editors from p and regenerates the preview. Used
// for startup defaults, preset load and reset.
func (a *App) setParameters(p serpentine.Parameters) {
	values := map[string]string{
		serpentine.KeyRadius:     formatValue(p.Radius),
		serpentine.KeyAmplitude:  formatValue(p.Amplitude),
		serpentine.KeyAngle:      formatValue(p.Angle),
		serpentine.KeyLength:     formatValue(p.Length),
		serpentine.KeyPitch:      formatValue(p.Pitch),
		serpentine.KeyFrontCount: strconv.Itoa(p.FrontCount),
		serpentine.KeyFrontWidth: formatValue(p.FrontWidth),
		serpentine.KeyBackCount:  strconv.Itoa(p.BackCount),
		serpentine.KeyBackWidth:  formatValue(p.BackWidth),
	}
	for _, f := range a.fields {
		f.editor.SetText(values[f.key])
	}
	a.noEdge.Value = p.NoEdge
	a.regenerate(p)
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// readParameters collects the current editor contents. Unparseable fields
// fall back to their defaults inside ParametersFromStrings, so a half-typed
// number degrades the preview instead of breaking it.
func (a *App) readParameters() serpentine.Parameters {
	values := make(map[string]string, len(a.fields)+1)
	for _, f := range a.fields {
		values[f.key] = f.editor.Text()
	}
	if a.noEdge.Value {
		values[serpentine.KeyNoEdge] = "true"
	} else {
		values[serpentine.KeyNoEdge] = "false"
	}
	return serpentine.ParametersFromStrings(values)
}

// regenerate rebuilds the pattern and fits it to the current viewport. A
// generation error produces the placeholder snapshot rather than aborting.
func (a *App) regenerate(p serpentine.Parameters) {
	a.params = p
	layers, err := serpentine.Generate(p)
	if err != nil {
		a.status = fmt.Sprintf("Invalid parameters: %v", err)
	} else {
		a.status = fmt.Sprintf("%d layers", len(layers))
	}
	a.snapshot = preview.NewSnapshot(layers, err, a.viewportSize.X, a.viewportSize.Y)
}

func (a *App) layout(gtx layout.Context) layout.Dimensions {
	a.drainPending()

	paint.FillShape(gtx.Ops, a.gvTheme.Palette.Bg, clip.Rect{Max: gtx.Constraints.Max}.Op())

	for a.resetBtn.Clicked(gtx) {
		a.setParameters(serpentine.DefaultParameters())
	}
	for a.openBtn.Clicked(gtx) {
		a.openPresetPicker()
	}
	for a.saveBtn.Clicked(gtx) {
		a.savePresetPicker()
	}
	if p := a.readParameters(); p != a.params {
		a.regenerate(p)
	}

	return layout.Flex{Axis: layout.Horizontal}.Layout(gtx,
		layout.Rigid(a.layoutPanel),
		layout.Flexed(1, a.layoutViewport),
	)
}

func (a *App) layoutPanel(gtx layout.Context) layout.Dimensions {
	gtx.Constraints.Min.X = gtx.Dp(unit.Dp(panelWidth))
	gtx.Constraints.Max.X = gtx.Constraints.Min.X

	children := []layout.FlexChild{
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return layout.Inset{Top: unit.Dp(12), Bottom: unit.Dp(8), Left: unit.Dp(12)}.Layout(gtx,
				material.H6(a.gvTheme.Theme, "Meander Trace").Layout)
		}),
		layout.Rigid(a.layoutToolbar),
	}

	for _, f := range a.fields {
		field := f
		children = append(children, layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return layout.Inset{Top: unit.Dp(6), Left: unit.Dp(12), Right: unit.Dp(12)}.Layout(gtx,
				func(gtx layout.Context) layout.Dimensions {
					return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
						layout.Flexed(1, material.Body2(a.gvTheme.Theme, field.label).Layout),
						layout.Rigid(func(gtx layout.Context) layout.Dimensions {
							gtx.Constraints.Min.X = gtx.Dp(unit.Dp(80))
							ed := material.Editor(a.gvTheme.Theme, &field.editor, "")
							return widget.Border{
								Color: a.gvTheme.Palette.ContrastBg, Width: unit.Dp(1), CornerRadius: unit.Dp(2),
							}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
								return layout.UniformInset(unit.Dp(4)).Layout(gtx, ed.Layout)
							})
						}),
					)
				})
		}))
	}

	children = append(children,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return layout.Inset{Top: unit.Dp(8), Left: unit.Dp(12)}.Layout(gtx,
				material.CheckBox(a.gvTheme.Theme, &a.noEdge, "Skip board outline").Layout)
		}),
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			return layout.Dimensions{Size: gtx.Constraints.Min}
		}),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return layout.UniformInset(unit.Dp(12)).Layout(gtx,
				material.Caption(a.gvTheme.Theme, a.status).Layout)
		}),
	)

	return layout.Flex{Axis: layout.Vertical}.Layout(gtx, children...)
}

func (a *App) layoutToolbar(gtx layout.Context) layout.Dimensions {
	iconBtn := func(click *widget.Clickable, icon *widget.Icon, desc string) layout.FlexChild {
		return layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			btn := material.IconButton(a.gvTheme.Theme, click, icon, desc)
			btn.Size = unit.Dp(22)
			btn.Inset = layout.UniformInset(unit.Dp(6))
			return layout.Inset{Right: unit.Dp(6)}.Layout(gtx, btn.Layout)
		})
	}
	return layout.Inset{Left: unit.Dp(12), Bottom: unit.Dp(4)}.Layout(gtx,
		func(gtx layout.Context) layout.Dimensions {
			return layout.Flex{Axis: layout.Horizontal}.Layout(gtx,
				iconBtn(&a.openBtn, a.openIcon, "Open preset"),
				iconBtn(&a.saveBtn, a.saveIcon, "Save preset"),
				iconBtn(&a.resetBtn, a.resetIcon, "Reset parameters"),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					if a.themeBtn.Clicked(gtx) {
						a.themeMenu.ToggleVisibility(gtx)
					}
					btn := material.IconButton(a.gvTheme.Theme, &a.themeBtn, a.themeIcon, "Color theme")
					btn.Size = unit.Dp(22)
					btn.Inset = layout.UniformInset(unit.Dp(6))
					dims := btn.Layout(gtx)
					a.themeMenu.Layout(gtx, a.gvTheme)
					return dims
				}),
			)
		})
}

func (a *App) layoutViewport(gtx layout.Context) layout.Dimensions {
	size := gtx.Constraints.Max
	if size != a.viewportSize {
		a.viewportSize = size
		a.snapshot = a.snapshot.Refit(size.X, size.Y)
	}

	defer clip.Rect{Max: size}.Push(gtx.Ops).Pop()
	a.snapshot.Render(newGioCanvas(gtx, a.shaper, size))
	return layout.Dimensions{Size: size}
}

// buildThemeMenu creates the color theme dropdown.
func (a *App) buildThemeMenu() *menu.DropdownMenu {
	themes := make([]preview.ColorTheme, 0, len(preview.ThemeNames))
	for t := range preview.ThemeNames {
		themes = append(themes, t)
	}
	sort.Slice(themes, func(i, j int) bool { return themes[i] < themes[j] })

	opts := make([]menu.MenuOption, 0, len(themes))
	for _, t := range themes {
		sel := t
		label := preview.ThemeNames[sel]
		opts = append(opts, menu.MenuOption{
			OnClicked: func() error {
				a.selectTheme(sel)
				return nil
			},
			Layout: func(gtx menu.C, th *theme.Theme) menu.D {
				lbl := material.Body1(th.Theme, label)
				if sel == preview.CurrentTheme {
					lbl.Color = th.Palette.ContrastBg
				}
				return layout.Inset{Left: unit.Dp(4), Right: unit.Dp(4)}.Layout(gtx, lbl.Layout)
			},
		})
	}
	drop := menu.NewDropdownMenu([][]menu.MenuOption{opts})
	drop.MaxWidth = unit.Dp(220)
	return drop
}

func (a *App) selectTheme(t preview.ColorTheme) {
	preview.SetTheme(t)
	if err := SaveConfig(&AppConfig{ColorTheme: int(t)}); err != nil {
		log.Printf("save config: %v", err)
	}
	a.invalidate()
}

// openPresetPicker loads a preset file chosen by the user and applies it.
func (a *App) openPresetPicker() {
	go func() {
		file, err := a.files.ChooseFile(PresetExtension)
		if err != nil {
			if err != explorer.ErrUserDecline {
				log.Printf("preset picker: %v", err)
			}
			return
		}
		defer file.Close()

		var (
			p    serpentine.Parameters
			perr error
		)
		if f, ok := file.(*os.File); ok {
			p, perr = preset.Load(f.Name())
		} else {
			var parser *preset.Parser
			if parser, perr = preset.NewParser(); perr == nil {
				p, perr = parser.Parse(file)
			}
		}
		if perr != nil {
			a.postStatus(fmt.Sprintf("Preset load failed: %v", perr))
			return
		}
		a.postParameters(p)
	}()
}

// savePresetPicker writes the current parameters to a user-chosen file.
func (a *App) savePresetPicker() {
	p := a.params
	go func() {
		file, err := a.files.CreateFile("meander." + PresetExtension)
		if err != nil {
			if err != explorer.ErrUserDecline {
				log.Printf("preset save: %v", err)
			}
			return
		}
		defer file.Close()

		if _, err := io.WriteString(file, preset.Format(p)); err != nil {
			a.postStatus(fmt.Sprintf("Preset save failed: %v", err))
		} else {
			a.postStatus("Preset saved")
		}
	}()
}
