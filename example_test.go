package rs01dict_test

import (
	"errors"
	"fmt"
	"log"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/rs01dict"
)

// Example demonstrates rank and select over a short bit sequence.
func Example() {
	// 10110100
	d, err := rs01dict.New([]bool{true, false, true, true, false, true, false, false})
	if err != nil {
		log.Fatal(err)
	}

	r, _ := d.Rank1(3)
	p, _ := d.Select1(3)
	z, _ := d.Select0(0)
	fmt.Println(r, p, z)
	// Output: 2 5 1
}

// Example_outOfRange shows that queries never clamp.
func Example_outOfRange() {
	d, err := rs01dict.New([]bool{true, false})
	if err != nil {
		log.Fatal(err)
	}

	_, err = d.Select1(1)
	fmt.Println(errors.Is(err, rs01dict.ErrOutOfRange))
	fmt.Println(err)
	// Output:
	// true
	// select1(1): out of range [0, 1)
}

// ExampleFromRoaring builds a dictionary from a roaring bitmap.
func ExampleFromRoaring() {
	bm := roaring.BitmapOf(3, 10, 1000)

	d, err := rs01dict.FromRoaring(bm, 2000, rs01dict.WithAutoConfig())
	if err != nil {
		log.Fatal(err)
	}

	p, _ := d.Select1(2)
	r, _ := d.Rank1(500)
	fmt.Println(d.Ones(), p, r)
	// Output: 3 1000 2
}

// ExampleNewFromWords builds a dictionary from packed words.
func ExampleNewFromWords() {
	// Bits 0, 1 and 64 are set.
	d, err := rs01dict.NewFromWords([]uint64{0b11, 0b1}, 70)
	if err != nil {
		log.Fatal(err)
	}

	p, _ := d.Select1(2)
	fmt.Println(p)
	// Output: 64
}
