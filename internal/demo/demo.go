// Package demo runs the fill and generate walkthrough, printing each array
// after it has been mutated.
package demo

import (
	"fmt"
	"io"
	"strconv"

	"github.com/calvinalkan/arrfill/pkg/arrays"
)

// Char is a character element. It prints as the character itself rather
// than its code point.
type Char rune

func (c Char) String() string {
	return string(c)
}

// Printer renders arrays as single lines.
type Printer struct {
	Separator string

	// Trailing also writes Separator after the last element.
	Trailing bool
}

// Line returns the rendered array followed by a newline.
func Line[T any](p Printer, arr []T) string {
	line := arrays.Format(arr, p.Separator)
	if p.Trailing && len(arr) > 0 {
		line += p.Separator
	}

	return line + "\n"
}

// Demo prints the results of fill and generate operations to Out.
type Demo struct {
	Out     io.Writer
	Printer Printer
}

// New creates a Demo writing to out with the given printer.
func New(out io.Writer, printer Printer) *Demo {
	return &Demo{Out: out, Printer: printer}
}

func printArray[T any](d *Demo, arr []T) error {
	_, err := io.WriteString(d.Out, Line(d.Printer, arr))
	if err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	return nil
}

// FillAll replaces every element of arr with value and prints arr.
func FillAll[T any](d *Demo, arr []T, value T) error {
	arrays.Fill(arr, value)

	return printArray(d, arr)
}

// FillRange replaces arr[from:to] with value and prints arr. Nothing is
// printed when the range is rejected.
func FillRange[T any](d *Demo, arr []T, from, to int, value T) error {
	err := arrays.FillRange(arr, from, to, value)
	if err != nil {
		return err
	}

	return printArray(d, arr)
}

// GenerateAll sets arr[i] = gen(i) for every position and prints arr.
func GenerateAll[T any](d *Demo, arr []T, gen arrays.Generator[T]) error {
	arrays.SetAll(arr, gen)

	return printArray(d, arr)
}

// Run executes the fixed walkthrough. Each step gets its own array.
func (d *Demo) Run() error {
	// replace all elements
	ints := []int{1, 2, 3, 4, 5}
	bools := []bool{true, true, true}

	err := FillAll(d, ints, 100)
	if err != nil {
		return err
	}

	err = FillAll(d, bools, false)
	if err != nil {
		return err
	}

	// replace [from, to)
	chars := []Char{'a', 'b', 'c', 'q', 'w', 'e'}

	err = FillRange(d, chars, 2, 4, 'h')
	if err != nil {
		return err
	}

	// generate by index, once per callable form
	suffix := "-closure-"
	closure := func(i int) string {
		n := strconv.Itoa(i)

		return n + suffix + n
	}

	generators := []arrays.Generator[string]{
		namedGenerator,
		func(i int) string { return strconv.Itoa(i) + "-literal-" + strconv.Itoa(i) },
		tagger{tag: "-method-"}.at,
		closure,
	}

	for _, gen := range generators {
		words := []string{"hello", "darkness", "my", "old", "friend"}

		err = GenerateAll(d, words, gen)
		if err != nil {
			return err
		}
	}

	return nil
}

func namedGenerator(i int) string {
	return strconv.Itoa(i) + "-named-" + strconv.Itoa(i)
}

type tagger struct {
	tag string
}

func (t tagger) at(i int) string {
	return strconv.Itoa(i) + t.tag + strconv.Itoa(i)
}
