package der

/*
common.go contains small stdlib aliases shared by the rest of this
package.
*/

import (
	"strconv"
	"strings"
)

var (
	itoa  func(int) string              = strconv.Itoa
	split func(string, string) []string = strings.Split
	join  func([]string, string) string = strings.Join
)
