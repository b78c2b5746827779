// Copyright (c) 2023 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import (
	"fmt"

	"github.com/momeni/oolabs/pkg/core/cerr"
)

// Book is implemented by all book variants, namely PaperBook and
// AudioBook. The String method describes a book for its readers,
// while GoString renders it like a constructor call for developers.
type Book interface {
	Entity
	fmt.Stringer
	fmt.GoStringer

	Info() BookInfo
}

// BookInfo is the identity which is shared by all book variants.
type BookInfo struct {
	Name   string
	Author string
}

// String returns the base description of a book.
func (bi BookInfo) String() string {
	return fmt.Sprintf("Book %s. Author %s.", bi.Name, bi.Author)
}

// PaperBook is a printed book with a positive number of pages.
type PaperBook struct {
	BookInfo

	pages int
}

// NewPaperBook instantiates a PaperBook. The pages argument goes
// through SetPages, so a non-positive count is rejected here too.
func NewPaperBook(name, author string, pages int) (*PaperBook, error) {
	pb := &PaperBook{BookInfo: BookInfo{Name: name, Author: author}}
	if err := pb.SetPages(pages); err != nil {
		return nil, err
	}
	return pb, nil
}

// Kind returns EntityKindPaperBook.
func (pb *PaperBook) Kind() EntityKind {
	return EntityKindPaperBook
}

// Info returns the book identity.
func (pb *PaperBook) Info() BookInfo {
	return pb.BookInfo
}

// Pages returns the number of pages.
func (pb *PaperBook) Pages() int {
	return pb.pages
}

// SetPages updates the number of pages which must be positive.
func (pb *PaperBook) SetPages(pages int) error {
	if pages <= 0 {
		return cerr.InvalidArgument(fmt.Errorf(
			"pages (%d) must be a positive integer", pages,
		))
	}
	pb.pages = pages
	return nil
}

// String describes the book with its number of pages.
func (pb *PaperBook) String() string {
	return fmt.Sprintf("%s Pages: %d.", pb.BookInfo.String(), pb.pages)
}

// GoString renders the book like a constructor call.
func (pb *PaperBook) GoString() string {
	return fmt.Sprintf(
		"PaperBook(name=%q, author=%q, pages=%d)",
		pb.Name, pb.Author, pb.pages,
	)
}

// Status returns the book description.
func (pb *PaperBook) Status() string {
	return pb.String()
}

// AudioBook is a recorded book with a positive duration in hours.
type AudioBook struct {
	BookInfo

	duration float64
}

// NewAudioBook instantiates an AudioBook, validating the duration
// through SetDuration.
func NewAudioBook(name, author string, duration float64) (*AudioBook, error) {
	ab := &AudioBook{BookInfo: BookInfo{Name: name, Author: author}}
	if err := ab.SetDuration(duration); err != nil {
		return nil, err
	}
	return ab, nil
}

// Kind returns EntityKindAudioBook.
func (ab *AudioBook) Kind() EntityKind {
	return EntityKindAudioBook
}

// Info returns the book identity.
func (ab *AudioBook) Info() BookInfo {
	return ab.BookInfo
}

// Duration returns the duration in hours.
func (ab *AudioBook) Duration() float64 {
	return ab.duration
}

// SetDuration updates the duration (in hours) which must be positive.
func (ab *AudioBook) SetDuration(duration float64) error {
	if !finite(duration) || duration <= 0 {
		return cerr.InvalidArgument(fmt.Errorf(
			"duration (%v) must be a positive number", duration,
		))
	}
	ab.duration = duration
	return nil
}

// String describes the book with its duration.
func (ab *AudioBook) String() string {
	return fmt.Sprintf(
		"%s Duration: %s hours.", ab.BookInfo.String(), number(ab.duration),
	)
}

// GoString renders the book like a constructor call.
func (ab *AudioBook) GoString() string {
	return fmt.Sprintf(
		"AudioBook(name=%q, author=%q, duration=%s)",
		ab.Name, ab.Author, number(ab.duration),
	)
}

// Status returns the book description.
func (ab *AudioBook) Status() string {
	return ab.String()
}
