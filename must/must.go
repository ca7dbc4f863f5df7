// Package must turns (value, error) returns into panics.
// It is meant for the cmd tools in this module, where bad
// input should stop the program with the error it produced.
package must

// Must2 returns p1, or panics with err if it is non-nil.
//	n := must.Must2(strconv.Atoi(s))
func Must2[T1 any](p1 T1, err error) T1 {
	if err != nil {
		panic(err)
	}
	return p1
}
