// Copyright ©2025 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package state

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kortschak/vitals/metric"
	"github.com/kortschak/vitals/mock"
	"github.com/kortschak/vitals/theme"
)

var (
	paracetamol = mock.Medicine{ID: 1, Name: "Paracetamol", Price: "$4.99"}
	vitaminD    = mock.Medicine{ID: 2, Name: "Vitamin D3", Price: "$9.49"}
)

func TestSession(t *testing.T) {
	a := New(false)
	assert.True(t, a.Loading())
	assert.False(t, a.Authenticated())
	assert.ErrorIs(t, a.SetPage(Medicine), ErrNotAuthenticated)

	a.FinishLoading()
	assert.False(t, a.Loading())

	a.Login("alex", "")
	assert.True(t, a.Authenticated(), "mock login always succeeds")
	assert.Equal(t, "alex", a.User())
	require.NoError(t, a.SetPage(Medicine))
	assert.Equal(t, Medicine, a.Page())
	assert.Error(t, a.SetPage(Page(9)))

	require.NoError(t, a.AddToCart(paracetamol))
	a.SetSearch(Medicine, "vit")
	a.OpenDetail(metric.Sleep)

	a.Logout()
	assert.False(t, a.Authenticated())
	assert.Equal(t, Home, a.Page())
	assert.Empty(t, a.Cart())
	assert.Empty(t, a.Search(Medicine))
	_, open := a.Detail()
	assert.False(t, open)
}

func TestDarkMode(t *testing.T) {
	a := New(true)
	assert.True(t, a.DarkMode())
	assert.Equal(t, theme.Dark, a.Palette())
	assert.False(t, a.ToggleDarkMode())
	assert.Equal(t, theme.Light, a.Palette())
	a.SetDarkMode(true)
	assert.True(t, a.DarkMode())
}

func TestCart(t *testing.T) {
	a := New(false)
	assert.ErrorIs(t, a.AddToCart(paracetamol), ErrNotAuthenticated)
	a.Login("alex", "secret")

	require.NoError(t, a.AddToCart(paracetamol))
	require.NoError(t, a.AddToCart(vitaminD))
	require.NoError(t, a.AddToCart(paracetamol))

	want := []CartItem{
		{Medicine: paracetamol, Quantity: 2},
		{Medicine: vitaminD, Quantity: 1},
	}
	assert.Equal(t, want, a.Cart())
	assert.Equal(t, 2, a.CartCount())

	total, err := a.CartTotal()
	require.NoError(t, err)
	assert.InDelta(t, 2*4.99+9.49, total, 1e-9)

	c := a.Cart()
	c[0].Quantity = 100
	assert.Equal(t, 2, a.Cart()[0].Quantity, "cart is copied")

	require.NoError(t, a.AddToCart(mock.Medicine{ID: 9, Name: "Mystery", Price: "free"}))
	_, err = a.CartTotal()
	assert.Error(t, err)
}

func TestCartPrescription(t *testing.T) {
	d, err := mock.Load()
	require.NoError(t, err)
	rx, ok := d.Prescription(101)
	require.True(t, ok)
	shop, ok := d.Medicine(1)
	require.True(t, ok)

	a := New(false)
	a.Login("alex", "")
	require.NoError(t, a.AddToCart(rx.Medicine))
	require.NoError(t, a.AddToCart(shop))
	require.NoError(t, a.AddToCart(rx.Medicine))

	want := []CartItem{
		{Medicine: rx.Medicine, Quantity: 2},
		{Medicine: shop, Quantity: 1},
	}
	assert.Equal(t, want, a.Cart())
	assert.Equal(t, 2, a.CartCount())

	total, err := a.CartTotal()
	require.NoError(t, err)
	assert.InDelta(t, 2*12.50+4.99, total, 1e-9)
}

func TestSearchAndDetail(t *testing.T) {
	a := New(false)
	a.SetSearch(Booking, "cardio")
	assert.Equal(t, "cardio", a.Search(Booking))
	assert.Empty(t, a.Search(Home))
	assert.Empty(t, a.Search(Page(42)))

	a.OpenDetail(metric.BloodOxygen)
	m, open := a.Detail()
	assert.True(t, open)
	assert.Equal(t, metric.BloodOxygen, m)
	a.CloseDetail()
	_, open = a.Detail()
	assert.False(t, open)

	assert.Equal(t, 0, a.Quote())
	assert.Equal(t, 1, a.NextQuote())
}

func TestConcurrentCart(t *testing.T) {
	a := New(false)
	a.Login("alex", "")
	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			a.AddToCart(paracetamol)
			a.CartCount()
		}()
	}
	wg.Wait()
	require.Len(t, a.Cart(), 1)
	assert.Equal(t, 50, a.Cart()[0].Quantity)
}

func TestPageString(t *testing.T) {
	for _, p := range Pages {
		assert.NotContains(t, p.String(), "Page(")
	}
}
