package dbg

import (
	"fmt"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

// This converts edge ids into random readable names. It flagrantly leaks
// memory but generates the names lazily, so it's not a problem unless you're
// actually using it. This is helpful for telling trimmed pieces of the same
// input edge apart from unrelated edges when debugging a wrap.

var memo map[int]string

func init() {
	memo = make(map[int]string)
	// Since the names are generated in order of demand, we make them
	// nondeterministic to remind the user that the same name doesn't refer to
	// the same thing between runs.
	petname.NonDeterministicMode()
}

func Name(id int) string {
	if r, ok := memo[id]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[id] = r
	return r
}
