package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookTestament(t *testing.T) {
	tests := []struct {
		code string
		want Testament
	}{
		{"GEN", TestamentOld},
		{"MAL", TestamentOld},
		{"MAT", TestamentNew},
		{"REV", TestamentNew},
	}

	for _, tt := range tests {
		got, ok := BookTestament(tt.code)
		require.True(t, ok, tt.code)
		assert.Equal(t, tt.want, got, tt.code)
	}
}

func TestBookTestament_UnknownCode(t *testing.T) {
	_, ok := BookTestament("XYZ")
	assert.False(t, ok)
}

func TestBooksOfTestament(t *testing.T) {
	old := BooksOfTestament(TestamentOld)
	nt := BooksOfTestament(TestamentNew)

	assert.Len(t, old, 39)
	assert.Len(t, nt, 27)
	assert.Equal(t, "GEN", old[0])
	assert.Equal(t, "MAL", old[len(old)-1])
	assert.Equal(t, "MAT", nt[0])
	assert.Equal(t, "REV", nt[len(nt)-1])
}

func TestBooksOfTestament_BothMeansNoFilter(t *testing.T) {
	assert.Nil(t, BooksOfTestament(TestamentBoth))
}

func TestAllBooks(t *testing.T) {
	books := AllBooks()
	require.Len(t, books, 66)
	assert.Equal(t, "GEN", books[0])
	assert.Equal(t, "REV", books[65])

	// The returned slice is a copy
	books[0] = "mutated"
	assert.Equal(t, "GEN", AllBooks()[0])
}

func TestBookName(t *testing.T) {
	assert.Equal(t, "Genesis", BookName("GEN"))
	assert.Equal(t, "Song of Solomon", BookName("SNG"))
	assert.Equal(t, "XYZ", BookName("XYZ"))
}

func TestKnownBook(t *testing.T) {
	assert.True(t, KnownBook("JHN"))
	assert.False(t, KnownBook("john"))
	assert.False(t, KnownBook(""))
}

func TestGreekBookCode(t *testing.T) {
	assert.Equal(t, "Matt", GreekBookCode("MAT"))
	assert.Equal(t, "1Cor", GreekBookCode("1CO"))
	assert.Equal(t, "", GreekBookCode("GEN"))
}

func TestChurchFathers(t *testing.T) {
	require.Len(t, ChurchFathers, 9)
	assert.Contains(t, ChurchFathers, "Augustine of Hippo")
	assert.Contains(t, ChurchFathers, "Origen of Alexandria")
}
