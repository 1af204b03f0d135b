// Copyright ©2025 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"image"
	"math"
	"strings"
	"time"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"github.com/kortschak/vitals/anim"
	"github.com/kortschak/vitals/metric"
	"github.com/kortschak/vitals/mock"
	"github.com/kortschak/vitals/state"
	"github.com/kortschak/vitals/theme"
)

// numEmergencies is the number of emergencies listed on the home page.
const numEmergencies = 3

func (u *ui) homeItems(pal theme.Palette) []layout.Widget {
	items := []layout.Widget{
		func(gtx layout.Context) layout.Dimensions {
			q := u.data.Quote(u.app.Quote())
			return u.quote.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				return card(gtx, pal, func(gtx layout.Context) layout.Dimensions {
					return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
						layout.Rigid(label(u.th, material.Body1, "“"+q.Text+"”", pal.Foreground)),
						layout.Rigid(label(u.th, material.Caption, "– "+q.Author, pal.MutedForeground)),
					)
				})
			})
		},
	}
	for i, m := range metric.All {
		items = append(items, func(gtx layout.Context) layout.Dimensions {
			return u.metricCard(gtx, i, m, pal)
		})
	}
	items = append(items, func(gtx layout.Context) layout.Dimensions {
		return card(gtx, pal, func(gtx layout.Context) layout.Dimensions {
			return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
				layout.Rigid(label(u.th, material.Subtitle1, "Live Location", pal.Foreground)),
				layout.Rigid(label(u.th, material.Body2, u.data.Location.Address, pal.MutedForeground)),
			)
		})
	})
	items = append(items, label(u.th, material.H6, "Recent emergencies", pal.Foreground))
	for _, e := range u.data.RecentEmergencies(numEmergencies) {
		items = append(items, func(gtx layout.Context) layout.Dimensions {
			return card(gtx, pal, func(gtx layout.Context) layout.Dimensions {
				return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
					layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
						return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
							layout.Rigid(label(u.th, material.Body1, e.Summary, pal.Foreground)),
							layout.Rigid(label(u.th, material.Caption, e.Date, pal.MutedForeground)),
						)
					}),
					layout.Rigid(func(gtx layout.Context) layout.Dimensions {
						return badge(gtx, u.th, e.Severity, severity(e.Severity).Color(), pal.Card)
					}),
				)
			})
		})
	}
	return items
}

// severity maps an emergency or notification severity to a status.
func severity(s string) theme.Status {
	switch s {
	case "critical":
		return theme.StatusError
	case "major", "important":
		return theme.StatusWarning
	default:
		return theme.StatusInfo
	}
}

func (u *ui) metricCard(gtx layout.Context, i int, m metric.Metric, pal theme.Palette) layout.Dimensions {
	now := gtx.Now
	return u.cards[i].Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return card(gtx, pal, func(gtx layout.Context) layout.Dimensions {
			return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					return u.icon(gtx, m, now)
				}),
				layout.Rigid(layout.Spacer{Width: unit.Dp(12)}.Layout),
				layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
					return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
						layout.Rigid(label(u.th, material.Caption, m.Label(), pal.MutedForeground)),
						layout.Rigid(label(u.th, material.H6, u.data.Current(m), pal.Foreground)),
					)
				}),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					w := drawScene(u.th, u.visual(m, pal))
					switch m {
					case metric.HeartRate:
						w.reveal = revealAt(u.pulse, now)
					case metric.BloodOxygen:
						w.reveal = revealAt(u.flow, now)
					}
					return w.Layout(gtx)
				}),
			)
		})
	})
}

// revealAt returns the reveal fraction of g, or 1 when g is not
// running.
func revealAt(g *anim.Group, now time.Time) float64 {
	if !g.Running() {
		return 1
	}
	v, ok := g.Value(anim.Reveal, now)
	if !ok {
		return 1
	}
	return v
}

// icon draws the metric's badge, animated for steps and calories.
func (u *ui) icon(gtx layout.Context, m metric.Metric, now time.Time) layout.Dimensions {
	size := gtx.Dp(36)
	c := f32.Pt(float32(size)/2, float32(size)/2)

	var (
		tr      f32.Affine2D
		opacity = float32(1)
	)
	switch m {
	case metric.Calories:
		if s, ok := u.flame.Value(anim.Scale, now); ok {
			tr = tr.Scale(c, f32.Pt(float32(s), float32(s)))
		}
		if o, ok := u.flame.Value(anim.Opacity, now); ok {
			opacity = float32(o)
		}
	case metric.Steps:
		if r, ok := u.steps.Value(anim.Rotate, now); ok {
			tr = tr.Rotate(c, float32(r*math.Pi/180))
		}
		if dy, ok := u.steps.Value(anim.TranslateY, now); ok {
			tr = tr.Offset(f32.Pt(0, float32(gtx.Metric.PxPerDp)*float32(dy)))
		}
	}
	defer op.Affine(tr).Push(gtx.Ops).Pop()
	defer paint.PushOpacity(gtx.Ops, opacity).Pop()

	col := m.Color()
	paint.FillShape(gtx.Ops, theme.WithAlpha(col, 0x33), clip.Ellipse{Max: image.Pt(size, size)}.Op(gtx.Ops))

	gtx.Constraints = layout.Exact(image.Pt(size, size))
	l := material.Body1(u.th, strings.ToUpper(m.Info().Icon[:1]))
	l.Color = col
	return layout.Center.Layout(gtx, l.Layout)
}

func (u *ui) layoutDetail(gtx layout.Context, m metric.Metric, pal theme.Palette) {
	// The scrim takes all clicks outside the card and closes the view.
	u.scrim.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		paint.FillShape(gtx.Ops, theme.WithAlpha(pal.Foreground, 0x80), clip.Rect{Max: gtx.Constraints.Max}.Op())
		return layout.Dimensions{Size: gtx.Constraints.Max}
	})

	stats := u.data.Readings().Filter(m).Stats()
	layout.Center.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		gtx.Constraints.Max.X = min(gtx.Constraints.Max.X, gtx.Dp(unit.Dp(detailBox.Width+48)))
		return u.detailBody.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			return u.layoutDetailCard(gtx, m, stats, pal)
		})
	})
}

func (u *ui) layoutDetailCard(gtx layout.Context, m metric.Metric, stats metric.Stats, pal theme.Palette) layout.Dimensions {
	return card(gtx, pal, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			layout.Rigid(label(u.th, material.H6, m.Label(), m.Color())),
			layout.Rigid(label(u.th, material.H4, u.data.Current(m), pal.Foreground)),
			layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),
			layout.Rigid(drawScene(u.th, detailTrend(u.data, m, pal)).Layout),
			layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return layout.Flex{Spacing: layout.SpaceBetween}.Layout(gtx,
					layout.Rigid(stat(u.th, "Average", m.Format(stats.Average), pal)),
					layout.Rigid(stat(u.th, "Max", m.Format(stats.Max), pal)),
					layout.Rigid(stat(u.th, "Min", m.Format(stats.Min), pal)),
				)
			}),
			layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				r := u.data.Recommendation(m)
				if r == "" {
					return layout.Dimensions{}
				}
				return label(u.th, material.Body2, r, pal.MutedForeground)(gtx)
			}),
			layout.Rigid(layout.Spacer{Height: unit.Dp(12)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return layout.Flex{Spacing: layout.SpaceStart}.Layout(gtx,
					layout.Rigid(material.Button(u.th, &u.saveDetail, "Save SVG").Layout),
					layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
					layout.Rigid(material.Button(u.th, &u.closeDetail, "Close").Layout),
				)
			}),
		)
	})
}

func stat(th *material.Theme, name, value string, pal theme.Palette) layout.Widget {
	return func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Vertical, Alignment: layout.Middle}.Layout(gtx,
			layout.Rigid(label(th, material.Caption, name, pal.MutedForeground)),
			layout.Rigid(label(th, material.Subtitle1, value, pal.Foreground)),
		)
	}
}

func (u *ui) bookingItems(pal theme.Palette) []layout.Widget {
	query := u.app.Search(state.Booking)
	items := []layout.Widget{
		material.Editor(u.th, &u.search[state.Booking], "Search doctor or specialty").Layout,
	}
	for _, section := range []struct {
		title  string
		status mock.AppointmentStatus
	}{
		{title: "Upcoming", status: mock.Upcoming},
		{title: "Completed", status: mock.Completed},
	} {
		apts := u.data.AppointmentsWith(section.status, query)
		items = append(items, label(u.th, material.H6, section.title, pal.Foreground))
		if len(apts) == 0 {
			items = append(items, label(u.th, material.Body2, "No appointments", pal.MutedForeground))
		}
		for _, a := range apts {
			items = append(items, func(gtx layout.Context) layout.Dimensions {
				return appointment(gtx, u.th, a, pal)
			})
		}
	}
	return items
}

func appointment(gtx layout.Context, th *material.Theme, a mock.Appointment, pal theme.Palette) layout.Dimensions {
	return card(gtx, pal, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
			layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
				return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
					layout.Rigid(label(th, material.Subtitle1, a.Doctor, pal.Foreground)),
					layout.Rigid(label(th, material.Body2, a.Specialty, pal.MutedForeground)),
					layout.Rigid(label(th, material.Caption, a.Date+" "+a.Time+" · "+a.Location, pal.MutedForeground)),
				)
			}),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				st, ok := a.Status.Status()
				col := pal.MutedForeground
				if ok {
					col = st.Color()
				}
				return badge(gtx, th, string(a.Status), col, pal.Card)
			}),
		)
	})
}

func (u *ui) medicineItems(pal theme.Palette) []layout.Widget {
	query := u.app.Search(state.Medicine)
	items := []layout.Widget{
		material.Editor(u.th, &u.search[state.Medicine], "Search medicines").Layout,
		func(gtx layout.Context) layout.Dimensions {
			total, err := u.app.CartTotal()
			txt := fmt.Sprintf("%d items in cart, total $%.2f", u.app.CartCount(), total)
			if err != nil {
				txt = fmt.Sprintf("%d items in cart", u.app.CartCount())
			}
			return label(u.th, material.Body1, txt, pal.Foreground)(gtx)
		},
	}
	items = append(items, label(u.th, material.H6, "Your prescriptions", pal.Foreground))
	for _, rx := range u.data.Prescriptions() {
		btn, ok := u.rx[rx.ID]
		if !ok {
			btn = new(widget.Clickable)
			u.rx[rx.ID] = btn
		}
		items = append(items, func(gtx layout.Context) layout.Dimensions {
			return card(gtx, pal, func(gtx layout.Context) layout.Dimensions {
				return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
					layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
						return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
							layout.Rigid(label(u.th, material.Subtitle1, rx.Name, pal.Foreground)),
							layout.Rigid(label(u.th, material.Caption, rx.Description, pal.MutedForeground)),
							layout.Rigid(label(u.th, material.Body1, rx.Price, pal.Primary)),
							layout.Rigid(label(u.th, material.Caption, "Prescribed by "+rx.Doctor+" on "+rx.Date, pal.MutedForeground)),
						)
					}),
					layout.Rigid(material.Button(u.th, btn, "Add").Layout),
				)
			})
		})
	}
	for _, section := range []struct {
		title    string
		frequent bool
	}{
		{title: "Frequently bought", frequent: true},
		{title: "Other medicines", frequent: false},
	} {
		items = append(items, label(u.th, material.H6, section.title, pal.Foreground))
		for _, med := range u.data.Medicines(section.frequent, query) {
			btn, ok := u.add[med.ID]
			if !ok {
				btn = new(widget.Clickable)
				u.add[med.ID] = btn
			}
			items = append(items, func(gtx layout.Context) layout.Dimensions {
				return card(gtx, pal, func(gtx layout.Context) layout.Dimensions {
					return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
						layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
							return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
								layout.Rigid(label(u.th, material.Subtitle1, med.Name, pal.Foreground)),
								layout.Rigid(label(u.th, material.Caption, med.Description, pal.MutedForeground)),
								layout.Rigid(label(u.th, material.Body1, med.Price, pal.Foreground)),
							)
						}),
						layout.Rigid(material.Button(u.th, btn, "Add").Layout),
					)
				})
			})
		}
	}
	return items
}

func (u *ui) profileItems(pal theme.Palette) []layout.Widget {
	usr := u.data.User
	name := u.app.User()
	if name == "" {
		name = usr.Username
	}
	line := func(l func(*material.Theme, string) material.LabelStyle, txt string) layout.Widget {
		return label(u.th, l, txt, pal.Foreground)
	}
	muted := func(txt string) layout.Widget {
		return label(u.th, material.Caption, txt, pal.MutedForeground)
	}
	items := []layout.Widget{
		line(material.H5, name),
		muted(fmt.Sprintf("%d years · %s · %s · %s", usr.Age, usr.Gender, usr.Height, usr.Weight)),
		func(gtx layout.Context) layout.Dimensions {
			return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
				layout.Flexed(1, line(material.Body1, "Dark mode")),
				layout.Rigid(material.Switch(u.th, &u.dark, "Dark mode").Layout),
			)
		},
		line(material.H6, "Health conditions"),
	}
	for _, c := range usr.HealthConditions {
		items = append(items, line(material.Body1, c.Name), muted(c.Status+" since "+c.Since))
	}
	items = append(items, line(material.H6, "Medications"))
	for _, m := range usr.Medications {
		items = append(items, line(material.Body1, m.Name+" "+m.Dosage), muted(m.Frequency+" for "+m.Condition))
	}
	items = append(items, line(material.H6, "Allergies"))
	for _, a := range usr.Allergies {
		items = append(items, line(material.Body1, a.Name), muted(a.Reaction+". "+a.Precaution))
	}
	items = append(items, line(material.H6, "Emergency contacts"))
	for _, c := range u.data.EmergencyContacts {
		items = append(items, line(material.Body1, c.Name+" ("+c.Relationship+")"), muted(c.Phone))
	}
	items = append(items, material.Button(u.th, &u.logout, "Log out").Layout)
	return items
}
