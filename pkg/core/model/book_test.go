// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/momeni/oolabs/pkg/core/cerr"
	"github.com/momeni/oolabs/pkg/core/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaperBook(t *testing.T) {
	_, err := model.NewPaperBook("Ghosts", "Chuck Palahniuk", -5)
	assert.ErrorIs(t, err, cerr.ErrInvalidArgument)

	pb, err := model.NewPaperBook("Ghosts", "Chuck Palahniuk", 512)
	require.NoError(t, err)
	assert.ErrorIs(t, pb.SetPages(0), cerr.ErrInvalidArgument)
	assert.Equal(t, 512, pb.Pages())
	require.NoError(t, pb.SetPages(300))
	assert.Equal(t, 300, pb.Pages())

	var b model.Book = pb
	assert.Equal(t, model.BookInfo{Name: "Ghosts", Author: "Chuck Palahniuk"}, b.Info())
	assert.Equal(t, "Book Ghosts. Author Chuck Palahniuk. Pages: 300.", b.String())
	assert.Equal(t, b.String(), b.Status())
	assert.Equal(t,
		`PaperBook(name="Ghosts", author="Chuck Palahniuk", pages=300)`,
		fmt.Sprintf("%#v", b),
	)
}

func TestAudioBook(t *testing.T) {
	for _, d := range []float64{0, -1, math.Inf(1), math.NaN()} {
		_, err := model.NewAudioBook("a", "b", d)
		assert.ErrorIs(t, err, cerr.ErrInvalidArgument, "duration %v", d)
	}
	ab, err := model.NewAudioBook("The Little Prince", "Saint-Exupery", 2.07)
	require.NoError(t, err)
	assert.ErrorIs(t, ab.SetDuration(-2), cerr.ErrInvalidArgument)
	assert.Equal(t, 2.07, ab.Duration())
	assert.Equal(t, model.EntityKindAudioBook, ab.Kind())
	assert.Equal(t,
		`AudioBook(name="The Little Prince", author="Saint-Exupery", duration=2.07)`,
		ab.GoString(),
	)
}

func ExampleAudioBook() {
	ab, _ := model.NewAudioBook("Маленький принц", "Антуан де Сент-Экзюпери", 2.07)
	fmt.Println(ab)
	// Output: Book Маленький принц. Author Антуан де Сент-Экзюпери. Duration: 2.07 hours.
}
