//go:build generate

// This program writes tables_generated.go from a local checkout of the
// Unicode Character Database: the General_Category, Scripts, EastAsianWidth,
// GraphemeBreakProperty and emoji-data files. Point
// UCD_ROOT at an extracted UCD release directory (the layout produced by
// unzipping https://www.unicode.org/Public/17.0.0/ucd/UCD.zip) and run
// go generate.
//
//go:generate go run -tags generate gen_tables.go

package main

import (
	"bytes"
	"fmt"
	"go/format"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/scalecode-solutions/colscan/ucdloader"
)

func main() {
	log.SetPrefix("gen_tables: ")
	log.SetFlags(0)

	root := os.Getenv("UCD_ROOT")
	if root == "" {
		log.Fatal("UCD_ROOT must point at an extracted UCD release directory")
	}

	var sections []tableSection
	for _, spec := range fileSpecs {
		ranges, err := collectRanges(root, spec)
		if err != nil {
			log.Fatalf("%s: %v", spec.file, err)
		}
		sections = append(sections, tableSection{spec: spec, ranges: ranges})
	}

	src := render(sections)
	formatted, err := format.Source([]byte(src))
	if err != nil {
		log.Fatal("gofmt:", err)
	}

	log.Print("Writing to tables_generated.go")
	if err := os.WriteFile("tables_generated.go", formatted, 0644); err != nil {
		log.Fatal(err)
	}
}

// fileSpec names one UCD file and the property value(s) it contributes to a
// generated Go identifier of the form Group+PropertyValue, e.g. the Scripts
// field "Latin" becomes ScriptLatin.
type fileSpec struct {
	file     string // relative to UCD_ROOT
	group    string // identifier prefix, e.g. "Script", "GC", "EAW", "GB", "Emoji"
	rename   map[string]string
}

var fileSpecs = []fileSpec{
	{file: "Scripts.txt", group: "Script", rename: nil},
	{file: "extracted/DerivedGeneralCategory.txt", group: "GC", rename: nil},
	{file: "extracted/DerivedEastAsianWidth.txt", group: "EAW", rename: nil},
	{file: "auxiliary/GraphemeBreakProperty.txt", group: "GB", rename: nil},
	{file: "emoji/emoji-data.txt", group: "Emoji", rename: nil},
}

type rangePair struct{ lo, hi rune }

type tableSection struct {
	spec   fileSpec
	ranges map[string][]rangePair
}

func collectRanges(root string, spec fileSpec) (map[string][]rangePair, error) {
	out := make(map[string][]rangePair)
	err := ucdloader.LoadPath(root+"/"+spec.file, func(a ucdloader.Assignment) error {
		if len(a.Fields) == 0 {
			return nil
		}
		value := a.Fields[0]
		if spec.rename != nil {
			if renamed, ok := spec.rename[value]; ok {
				value = renamed
			}
		}
		out[value] = append(out[value], rangePair{a.Lo, a.Hi})
		return nil
	})
	return out, err
}

func render(sections []tableSection) string {
	var buf bytes.Buffer
	buf.WriteString(`// Code generated by gen_tables.go from a local UCD checkout. DO NOT EDIT.

package ucdtables

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

`)

	for _, sec := range sections {
		names := make([]string, 0, len(sec.ranges))
		for name := range sec.ranges {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			ident := sec.spec.group + sanitizeIdent(name)
			fmt.Fprintf(&buf, "var %s = rangetable.Merge(\n", ident)
			for _, r := range sec.ranges[name] {
				fmt.Fprintf(&buf, "\trt(0x%04X, 0x%04X),\n", r.lo, r.hi)
			}
			buf.WriteString(")\n\n")
		}
	}

	return buf.String()
}

func sanitizeIdent(s string) string {
	s = strings.ReplaceAll(s, "_", "")
	s = strings.ReplaceAll(s, "-", "")
	return s
}
