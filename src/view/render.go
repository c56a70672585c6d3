package view

import (
	"bytes"
	"rulelife/src/universe"
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora"
)

const (
	ruleRowSurvive = 0
	ruleRowBorn    = 1
	//each rule line starts with the label like " S: ", every count takes 2 columns
	rulePrefixWidth = 4
	ruleCountWidth  = 2
)

var ruleRowNames = [...]string{ruleRowSurvive: "Survive", ruleRowBorn: "Born"}

//renderArea renders the area cropped to maxW x maxH
//the last visible line is replaced by the warning when the area is cropped
func renderArea(au aurora.Aurora, a universe.Area, maxW int, maxH int, liveFiller string, deadFiller string) string {
	crop := a.Width > maxW || a.Height > maxH

	var b bytes.Buffer
	for y := 0; y < a.Height; y++ {
		//discard the data outside the view area
		if y >= maxH {
			break
		}
		if y != 0 {
			b.WriteByte('\n')
		}
		if crop && y == maxH-1 {
			b.WriteString(au.Red("The field size is larger than the viewing area").BgBlack().String())
			break
		}
		for x, c := range a.Row(y) {
			if x >= maxW {
				break
			}
			if c {
				b.WriteString(liveFiller)
			} else {
				b.WriteString(deadFiller)
			}
		}
	}
	return b.String()
}

//renderRuleRow renders the line with counts 0..8, enabled counts are highlighted
func renderRuleRow(au aurora.Aurora, label string, counts []int, selected bool) string {
	enabled := [universe.MaxNeighbours + 1]bool{}
	for _, c := range counts {
		enabled[c] = true
	}
	var b strings.Builder
	prefix := " " + label[:1] + ": "
	if selected {
		b.WriteString(au.Cyan(prefix).Bold().String())
	} else {
		b.WriteString(prefix)
	}
	for c, on := range enabled {
		digit := strconv.Itoa(c)
		if on {
			b.WriteString(au.Black(digit).BgGreen().String())
		} else {
			b.WriteString(au.BrightBlack(digit).String())
		}
		b.WriteByte(' ')
	}
	return b.String()
}

//ruleAt maps the cursor position inside the rules view to the rule row and count
func ruleAt(cx int, cy int) (row int, count int, ok bool) {
	if cy != ruleRowSurvive && cy != ruleRowBorn {
		return 0, 0, false
	}
	if cx < rulePrefixWidth {
		return 0, 0, false
	}
	count = (cx - rulePrefixWidth) / ruleCountWidth
	if count > universe.MaxNeighbours {
		return 0, 0, false
	}
	return cy, count, true
}
