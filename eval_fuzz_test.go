package evalex_test

import (
	"errors"
	"math"
	"testing"

	"github.com/zephyrtronium/evalex"
)

func FuzzEvalString(f *testing.F) {
	f.Add("2 + 3 * 4")
	f.Add("-(+1) + (+2)")
	f.Add("((5 + 2) / (3 * 0))")
	f.Add("--3 % 0.5 ^ )(")
	f.Fuzz(func(t *testing.T, s string) {
		r, err := evalex.EvalString(s)
		if err != nil {
			var ie evalex.InputError
			if !errors.As(err, &ie) {
				t.Fatalf("%q gave non-input error %#v", s, err)
			}
			return
		}
		again, err := evalex.EvalString(s)
		if err != nil {
			t.Fatalf("%q failed on second evaluation: %v", s, err)
		}
		if again != r && !(math.IsNaN(again) && math.IsNaN(r)) {
			t.Fatalf("%q gave %g then %g", s, r, again)
		}
		evalex.EvalString(s, evalex.Strict(), evalex.RightAssocPow())
	})
}
