// Copyright ©2025 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package state holds the application state shared by the vitals views.
package state

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/kortschak/vitals/metric"
	"github.com/kortschak/vitals/mock"
	"github.com/kortschak/vitals/theme"
)

// Page is a top level tab.
type Page uint8

//go:generate go tool golang.org/x/tools/cmd/stringer -type Page
const (
	Home Page = iota
	Booking
	User
	Medicine

	numPages
)

// Pages is the set of tabs in display order.
var Pages = [numPages]Page{Home, Booking, User, Medicine}

// ErrNotAuthenticated is returned by operations that require a
// logged in user.
var ErrNotAuthenticated = errors.New("not authenticated")

// CartItem is a medicine in the shopping cart.
type CartItem struct {
	mock.Medicine
	Quantity int
}

// App is the mutable application state. It is safe for concurrent use.
type App struct {
	mu sync.Mutex

	loading       bool
	authenticated bool
	user          string
	dark          bool
	page          Page
	search        [numPages]string
	cart          []CartItem

	detail     metric.Metric
	detailOpen bool

	quote int
}

// New returns a new App in the loading phase.
func New(dark bool) *App {
	return &App{loading: true, dark: dark}
}

// Loading reports whether the application is still starting up.
func (a *App) Loading() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.loading
}

// FinishLoading ends the loading phase.
func (a *App) FinishLoading() {
	a.mu.Lock()
	a.loading = false
	a.mu.Unlock()
}

// Login authenticates user. Authentication is mocked and always
// succeeds.
func (a *App) Login(user, password string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.loading = false
	a.authenticated = true
	a.user = user
	a.page = Home
}

// Logout ends the session, discarding the cart and any open views.
func (a *App) Logout() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.authenticated = false
	a.user = ""
	a.page = Home
	a.cart = nil
	a.search = [numPages]string{}
	a.detailOpen = false
}

// Authenticated reports whether a user is logged in.
func (a *App) Authenticated() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.authenticated
}

// User returns the logged in user name.
func (a *App) User() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.user
}

// DarkMode reports whether the dark appearance is selected.
func (a *App) DarkMode() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.dark
}

// SetDarkMode selects the dark or light appearance.
func (a *App) SetDarkMode(dark bool) {
	a.mu.Lock()
	a.dark = dark
	a.mu.Unlock()
}

// ToggleDarkMode switches appearance and returns the new setting.
func (a *App) ToggleDarkMode() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.dark = !a.dark
	return a.dark
}

// Palette returns the colour palette for the current appearance.
func (a *App) Palette() theme.Palette {
	return theme.For(a.DarkMode())
}

// Page returns the selected tab.
func (a *App) Page() Page {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.page
}

// SetPage selects a tab.
func (a *App) SetPage(p Page) error {
	if p >= numPages {
		return fmt.Errorf("invalid page: %v", p)
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.authenticated {
		return ErrNotAuthenticated
	}
	a.page = p
	return nil
}

// Search returns the search query entered on page p.
func (a *App) Search(p Page) string {
	a.mu.Lock()
	defer a.mu.Unlock()
	if p >= numPages {
		return ""
	}
	return a.search[p]
}

// SetSearch records the search query entered on page p.
func (a *App) SetSearch(p Page, query string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if p < numPages {
		a.search[p] = query
	}
}

// AddToCart adds one of m to the cart, merging with an existing
// entry for the same medicine.
func (a *App) AddToCart(m mock.Medicine) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.authenticated {
		return ErrNotAuthenticated
	}
	i := slices.IndexFunc(a.cart, func(c CartItem) bool { return c.ID == m.ID })
	if i >= 0 {
		a.cart[i].Quantity++
		return nil
	}
	a.cart = append(a.cart, CartItem{Medicine: m, Quantity: 1})
	return nil
}

// Cart returns a copy of the cart contents in the order first added.
func (a *App) Cart() []CartItem {
	a.mu.Lock()
	defer a.mu.Unlock()
	return slices.Clone(a.cart)
}

// CartCount returns the number of distinct medicines in the cart.
func (a *App) CartCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.cart)
}

// CartTotal returns the total price of the cart.
func (a *App) CartTotal() (float64, error) {
	var total float64
	for _, c := range a.Cart() {
		p, err := mock.Number(c.Price)
		if err != nil {
			return 0, fmt.Errorf("invalid price for %s: %w", c.Name, err)
		}
		total += p * float64(c.Quantity)
	}
	return total, nil
}

// OpenDetail shows the detail view for m.
func (a *App) OpenDetail(m metric.Metric) {
	a.mu.Lock()
	a.detail = m
	a.detailOpen = true
	a.mu.Unlock()
}

// CloseDetail hides the detail view.
func (a *App) CloseDetail() {
	a.mu.Lock()
	a.detailOpen = false
	a.mu.Unlock()
}

// Detail returns the metric shown in the detail view and whether the
// view is open.
func (a *App) Detail() (metric.Metric, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.detail, a.detailOpen
}

// Quote returns the index of the quote on display.
func (a *App) Quote() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.quote
}

// NextQuote advances to the next quote and returns its index.
func (a *App) NextQuote() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.quote++
	return a.quote
}
