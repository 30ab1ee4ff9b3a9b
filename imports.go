package sand

import (
	"strconv"
	"strings"
)

var (
	atoi   func(string) (int, error)     = strconv.Atoi
	trimS  func(string) string           = strings.TrimSpace
	hasPfx func(string, string) bool     = strings.HasPrefix
	split  func(string, string) []string = strings.Split
	stridx func(string, string) int      = strings.Index
	streqf func(string, string) bool     = strings.EqualFold
	lc     func(string) string           = strings.ToLower
)
