package server

import (
	"html/template"
)

var templateFuncs = template.FuncMap{
	"add": func(a int, b int) int {
		return a + b
	},
	// seq yields 0..n-1, used to render page number links.
	"seq": func(n int) []int {
		s := make([]int, n)
		for i := range s {
			s[i] = i
		}
		return s
	},
}
