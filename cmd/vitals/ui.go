// Copyright ©2025 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"time"

	"gioui.org/font"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"gioui.org/x/explorer"
	"go.uber.org/zap"

	"github.com/kortschak/vitals/anim"
	"github.com/kortschak/vitals/metric"
	"github.com/kortschak/vitals/mock"
	"github.com/kortschak/vitals/scene"
	"github.com/kortschak/vitals/state"
	"github.com/kortschak/vitals/theme"
)

// loadingDelay is the length of the start up phase.
const loadingDelay = 2 * time.Second

type ui struct {
	app  *state.App
	data *mock.Data
	log  *zap.Logger
	expl *explorer.Explorer
	th   *material.Theme

	start time.Time
	bpm   float64

	// visuals caches the card scenes for the palette they were
	// built with.
	visuals     map[metric.Metric]scene.Scene
	visualsDark bool

	user, password widget.Editor
	login          widget.Clickable

	tabs   [len(state.Pages)]widget.Clickable
	cards  [len(metric.All)]widget.Clickable
	quote  widget.Clickable
	search [len(state.Pages)]widget.Editor
	add    map[int]*widget.Clickable
	rx     map[int]*widget.Clickable
	dark   widget.Bool
	logout widget.Clickable

	scrim       widget.Clickable
	detailBody  widget.Clickable
	closeDetail widget.Clickable
	saveDetail  widget.Clickable

	list widget.List

	animating bool
	flame     *anim.Group
	steps     *anim.Group
	pulse     *anim.Group
	flow      *anim.Group
}

func newUI(app *state.App, data *mock.Data, th *material.Theme, expl *explorer.Explorer, bpm float64, log *zap.Logger) *ui {
	u := &ui{
		app:   app,
		data:  data,
		log:   log,
		expl:  expl,
		th:    th,
		bpm:   bpm,
		add:   make(map[int]*widget.Clickable),
		rx:    make(map[int]*widget.Clickable),
		flame: anim.Flame(),
		steps: anim.Steps(),
		pulse: anim.Pulse(bpm),
		flow:  anim.Flow(),
	}
	u.user.SingleLine = true
	u.password.SingleLine = true
	u.password.Mask = '•'
	for i := range u.search {
		u.search[i].SingleLine = true
	}
	u.dark.Value = app.DarkMode()
	u.list.Axis = layout.Vertical
	return u
}

func (u *ui) groups() []*anim.Group {
	return []*anim.Group{u.flame, u.steps, u.pulse, u.flow}
}

// animate starts the home page animations when the page is shown and
// stops them when it is not.
func (u *ui) animate(gtx layout.Context, shown bool) {
	switch {
	case shown && !u.animating:
		for _, g := range u.groups() {
			g.Start(gtx.Now)
		}
		u.animating = true
		u.log.Debug("animations started")
	case !shown && u.animating:
		u.stop()
	}
	if u.animating {
		gtx.Execute(op.InvalidateCmd{})
	}
}

// stop cancels all animations.
func (u *ui) stop() {
	for _, g := range u.groups() {
		g.Stop()
	}
	if u.animating {
		u.log.Debug("animations stopped")
	}
	u.animating = false
}

func (u *ui) palette() theme.Palette {
	pal := u.app.Palette()
	u.th.Palette = material.Palette{
		Bg:         pal.Background,
		Fg:         pal.Foreground,
		ContrastBg: pal.Primary,
		ContrastFg: pal.PrimaryFg,
	}
	return pal
}

// visual returns the cached card scene for m.
func (u *ui) visual(m metric.Metric, pal theme.Palette) scene.Scene {
	dark := u.app.DarkMode()
	if u.visuals == nil || u.visualsDark != dark {
		u.visuals = make(map[metric.Metric]scene.Scene, len(metric.All))
		u.visualsDark = dark
		for _, mm := range metric.All {
			s, err := cardVisual(u.data, mm, pal)
			if err != nil {
				u.log.Warn("failed to build card visual", zap.Stringer("metric", mm), zap.Error(err))
				continue
			}
			u.visuals[mm] = s
		}
	}
	return u.visuals[m]
}

// update handles input events for the current frame.
func (u *ui) update(gtx layout.Context) {
	if u.login.Clicked(gtx) {
		u.app.Login(u.user.Text(), u.password.Text())
		u.password.SetText("")
		u.log.Info("logged in", zap.String("user", u.app.User()))
	}
	for i := range u.tabs {
		if u.tabs[i].Clicked(gtx) {
			err := u.app.SetPage(state.Pages[i])
			if err != nil {
				u.log.Warn("failed to change page", zap.Error(err))
			}
		}
	}
	for i := range u.cards {
		if u.cards[i].Clicked(gtx) {
			u.app.OpenDetail(metric.All[i])
		}
	}
	if u.quote.Clicked(gtx) {
		u.app.NextQuote()
	}
	for i := range u.search {
		for {
			ev, ok := u.search[i].Update(gtx)
			if !ok {
				break
			}
			if _, ok := ev.(widget.ChangeEvent); ok {
				u.app.SetSearch(state.Pages[i], u.search[i].Text())
			}
		}
	}
	for id, btn := range u.add {
		if !btn.Clicked(gtx) {
			continue
		}
		med, ok := u.data.Medicine(id)
		if !ok {
			continue
		}
		err := u.app.AddToCart(med)
		if err != nil {
			u.log.Warn("failed to add to cart", zap.Int("id", id), zap.Error(err))
		}
	}
	for id, btn := range u.rx {
		if !btn.Clicked(gtx) {
			continue
		}
		p, ok := u.data.Prescription(id)
		if !ok {
			continue
		}
		err := u.app.AddToCart(p.Medicine)
		if err != nil {
			u.log.Warn("failed to add prescription to cart", zap.Int("id", id), zap.Error(err))
		}
	}
	if u.dark.Update(gtx) {
		u.app.SetDarkMode(u.dark.Value)
	}
	if u.logout.Clicked(gtx) {
		u.app.Logout()
		u.stop()
		for i := range u.search {
			u.search[i].SetText("")
		}
		u.log.Info("logged out")
	}
	if u.closeDetail.Clicked(gtx) || u.scrim.Clicked(gtx) {
		u.app.CloseDetail()
	}
	if u.saveDetail.Clicked(gtx) {
		if m, ok := u.app.Detail(); ok {
			go u.saveSVG(m, detailTrend(u.data, m, u.app.Palette()))
		}
	}
}

func (u *ui) saveSVG(m metric.Metric, s scene.Scene) {
	name := slug(m.Label()) + "-trend.svg"
	f, err := u.expl.CreateFile(name)
	if err != nil {
		if !errors.Is(err, explorer.ErrUserDecline) {
			u.log.Error("failed to create file", zap.String("name", name), zap.Error(err))
		}
		return
	}
	err = errors.Join(s.WriteSVG(f), f.Close())
	if err != nil {
		u.log.Error("failed to save chart", zap.String("name", name), zap.Error(err))
		return
	}
	u.log.Info("saved chart", zap.String("name", name))
}

// Layout draws a frame.
func (u *ui) Layout(gtx layout.Context) layout.Dimensions {
	if u.start.IsZero() {
		u.start = gtx.Now
	}
	u.update(gtx)
	pal := u.palette()
	paint.Fill(gtx.Ops, pal.Background)

	if u.app.Loading() {
		if elapsed := gtx.Now.Sub(u.start); elapsed < loadingDelay {
			gtx.Execute(op.InvalidateCmd{At: u.start.Add(loadingDelay)})
			return layout.Center.Layout(gtx, material.H5(u.th, "Loading…").Layout)
		}
		u.app.FinishLoading()
		u.log.Debug("loading complete")
	}
	if !u.app.Authenticated() {
		u.animate(gtx, false)
		return u.layoutLogin(gtx)
	}

	_, detail := u.app.Detail()
	u.animate(gtx, u.app.Page() == state.Home && !detail)

	dims := layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions { return u.layoutHeader(gtx, pal) }),
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			return layout.UniformInset(unit.Dp(8)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				return u.layoutPage(gtx, pal)
			})
		}),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions { return u.layoutTabs(gtx, pal) }),
	)
	if m, ok := u.app.Detail(); ok {
		u.layoutDetail(gtx, m, pal)
	}
	return dims
}

func (u *ui) layoutLogin(gtx layout.Context) layout.Dimensions {
	return layout.Center.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		gtx.Constraints.Max.X = min(gtx.Constraints.Max.X, gtx.Dp(320))
		gtx.Constraints.Min.X = gtx.Constraints.Max.X
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			layout.Rigid(material.H4(u.th, "Vitals").Layout),
			layout.Rigid(layout.Spacer{Height: unit.Dp(16)}.Layout),
			layout.Rigid(material.Editor(u.th, &u.user, "Username").Layout),
			layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),
			layout.Rigid(material.Editor(u.th, &u.password, "Password").Layout),
			layout.Rigid(layout.Spacer{Height: unit.Dp(16)}.Layout),
			layout.Rigid(material.Button(u.th, &u.login, "Log in").Layout),
		)
	})
}

func (u *ui) layoutHeader(gtx layout.Context, pal theme.Palette) layout.Dimensions {
	return layout.UniformInset(unit.Dp(8)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
			layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
				l := material.H6(u.th, u.app.Page().String())
				l.Font.Weight = font.Bold
				return l.Layout(gtx)
			}),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				n := u.app.CartCount()
				if n == 0 {
					return layout.Dimensions{}
				}
				return badge(gtx, u.th, fmt.Sprintf("Cart %d", n), pal.Destructive, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
			}),
		)
	})
}

func (u *ui) layoutTabs(gtx layout.Context, pal theme.Palette) layout.Dimensions {
	current := u.app.Page()
	children := make([]layout.FlexChild, len(state.Pages))
	for i, p := range state.Pages {
		children[i] = layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			b := material.Button(u.th, &u.tabs[i], p.String())
			b.CornerRadius = 0
			if p == current {
				b.Background = pal.Primary
				b.Color = pal.PrimaryFg
			} else {
				b.Background = pal.Secondary
				b.Color = pal.Foreground
			}
			return b.Layout(gtx)
		})
	}
	return layout.Flex{}.Layout(gtx, children...)
}

func (u *ui) layoutPage(gtx layout.Context, pal theme.Palette) layout.Dimensions {
	var items []layout.Widget
	switch u.app.Page() {
	case state.Home:
		items = u.homeItems(pal)
	case state.Booking:
		items = u.bookingItems(pal)
	case state.Medicine:
		items = u.medicineItems(pal)
	case state.User:
		items = u.profileItems(pal)
	}
	return material.List(u.th, &u.list).Layout(gtx, len(items), func(gtx layout.Context, i int) layout.Dimensions {
		return layout.Inset{Bottom: unit.Dp(8)}.Layout(gtx, items[i])
	})
}

// card draws w on a rounded card background filling the available
// width.
func card(gtx layout.Context, pal theme.Palette, w layout.Widget) layout.Dimensions {
	gtx.Constraints.Min.X = gtx.Constraints.Max.X
	return layout.Background{}.Layout(gtx,
		func(gtx layout.Context) layout.Dimensions {
			rr := clip.UniformRRect(image.Rectangle{Max: gtx.Constraints.Min}, gtx.Dp(8))
			paint.FillShape(gtx.Ops, pal.Card, rr.Op(gtx.Ops))
			paint.FillShape(gtx.Ops, pal.Border, clip.Stroke{Path: rr.Path(gtx.Ops), Width: float32(gtx.Dp(1))}.Op())
			return layout.Dimensions{Size: gtx.Constraints.Min}
		},
		func(gtx layout.Context) layout.Dimensions {
			return layout.UniformInset(unit.Dp(12)).Layout(gtx, w)
		},
	)
}

// badge draws txt on a small rounded background.
func badge(gtx layout.Context, th *material.Theme, txt string, bg, fg color.NRGBA) layout.Dimensions {
	return layout.Background{}.Layout(gtx,
		func(gtx layout.Context) layout.Dimensions {
			rr := clip.UniformRRect(image.Rectangle{Max: gtx.Constraints.Min}, gtx.Dp(10))
			paint.FillShape(gtx.Ops, bg, rr.Op(gtx.Ops))
			return layout.Dimensions{Size: gtx.Constraints.Min}
		},
		func(gtx layout.Context) layout.Dimensions {
			l := material.Caption(th, txt)
			l.Color = fg
			return layout.Inset{Top: unit.Dp(2), Bottom: unit.Dp(2), Left: unit.Dp(8), Right: unit.Dp(8)}.Layout(gtx, l.Layout)
		},
	)
}

func label(th *material.Theme, l func(*material.Theme, string) material.LabelStyle, txt string, col color.NRGBA) layout.Widget {
	s := l(th, txt)
	s.Color = col
	return s.Layout
}
