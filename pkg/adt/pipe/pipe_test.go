package pipe

import (
	"strconv"
	"testing"

	"github.com/ib-77/adt/pkg/adt/result"
)

func TestStartAndResult_Success(t *testing.T) {
	t.Parallel()
	p := Start(result.Success[int, string](5))

	out := p.Result()
	if !out.IsSuccess() || out.GetOrElse(-1) != 5 {
		t.Fatalf("expected success with 5, got: success=%v val=%v", out.IsSuccess(), out.GetOrElse(-1))
	}
}

func TestFromValue(t *testing.T) {
	t.Parallel()
	out := FromValue[int, string](7).Result()
	if !out.IsSuccess() || out.GetOrElse(-1) != 7 {
		t.Fatalf("expected success with 7, got: success=%v val=%v", out.IsSuccess(), out.GetOrElse(-1))
	}
}

func TestThen_ShortCircuitOnFailure(t *testing.T) {
	t.Parallel()
	p := Start(result.Failure[int, string]("boom"))

	called := false
	p = p.Then(func(n int) result.Result[int, string] {
		called = true
		return result.Success[int, string](n + 1)
	})

	out := p.Result()
	if e, failed := out.Err(); !failed || e != "boom" {
		t.Fatalf("expected failure 'boom', got: failed=%v err=%v", failed, e)
	}
	if called {
		t.Fatalf("onSuccess should not be called when the pipeline already failed")
	}
}

func TestThen_SuccessPath(t *testing.T) {
	t.Parallel()
	out := FromValue[int, string](3).
		Then(func(n int) result.Result[int, string] { return result.Success[int, string](n * 2) }).
		Result()

	if !out.IsSuccess() || out.GetOrElse(-1) != 6 {
		t.Fatalf("expected success with 6, got: success=%v val=%v", out.IsSuccess(), out.GetOrElse(-1))
	}
}

func TestMap_Success(t *testing.T) {
	t.Parallel()
	out := FromValue[int, string](5).
		Map(func(n int) int { return n + 3 }).
		Result()

	if !out.IsSuccess() || out.GetOrElse(-1) != 8 {
		t.Fatalf("expected success with 8, got: success=%v val=%v", out.IsSuccess(), out.GetOrElse(-1))
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()
	out := FromValue[int, string](-4).
		Validate(func(n int) bool { return n >= 0 },
			func(n int) string { return "negative: " + strconv.Itoa(n) }).
		Result()

	if e, failed := out.Err(); !failed || e != "negative: -4" {
		t.Fatalf("expected validation failure, got: failed=%v err=%v", failed, e)
	}
}

func TestEnsure(t *testing.T) {
	t.Parallel()

	var successes []int
	var failures []string

	FromValue[int, string](2).Ensure(
		func(n int) { successes = append(successes, n) },
		func(e string) { failures = append(failures, e) })

	Start(result.Failure[int, string]("bad")).Ensure(
		func(n int) { successes = append(successes, n) },
		func(e string) { failures = append(failures, e) })

	if len(successes) != 1 || successes[0] != 2 {
		t.Fatalf("expected one success side effect with 2, got: %v", successes)
	}
	if len(failures) != 1 || failures[0] != "bad" {
		t.Fatalf("expected one failure side effect with bad, got: %v", failures)
	}
}

func TestEnsure_NilHandlers(t *testing.T) {
	t.Parallel()

	out := FromValue[int, string](1).Ensure(nil, nil).Result()
	if !out.IsSuccess() {
		t.Fatalf("Ensure with nil handlers must pass the outcome through")
	}
	out = Start(result.Failure[int, string]("e")).Ensure(nil, nil).Result()
	if !out.IsFailure() {
		t.Fatalf("Ensure with nil handlers must pass the failure through")
	}
}

func TestOr(t *testing.T) {
	t.Parallel()

	got := Start(result.Failure[int, string]("e")).
		Or(FromValue[int, string](9)).
		Result()
	if !got.IsSuccess() || got.GetOrElse(-1) != 9 {
		t.Fatalf("expected the alternative to win, got: %v", got.GetOrElse(-1))
	}

	got = FromValue[int, string](1).
		Or(FromValue[int, string](9)).
		Result()
	if got.GetOrElse(-1) != 1 {
		t.Fatalf("expected the original success to win, got: %v", got.GetOrElse(-1))
	}
}

func TestAnd(t *testing.T) {
	t.Parallel()

	got := FromValue[int, string](1).
		And(FromValue[int, string](2)).
		Result()
	if got.GetOrElse(-1) != 2 {
		t.Fatalf("expected the required pipeline's value, got: %v", got.GetOrElse(-1))
	}

	got = Start(result.Failure[int, string]("first")).
		And(FromValue[int, string](2)).
		Result()
	if e, failed := got.Err(); !failed || e != "first" {
		t.Fatalf("expected the first failure to win, got: failed=%v err=%v", failed, e)
	}
}

func TestFinally(t *testing.T) {
	t.Parallel()

	got := FromValue[int, string](4).
		Map(func(n int) int { return n * n }).
		Finally(
			func(e string) int { return -1 },
			func(n int) int { return n })
	if got != 16 {
		t.Fatalf("expected 16, got: %v", got)
	}

	got = Start(result.Failure[int, string]("e")).Finally(
		func(e string) int { return -1 },
		func(n int) int { return n })
	if got != -1 {
		t.Fatalf("expected -1, got: %v", got)
	}
}

func TestTypeChangingSteps(t *testing.T) {
	t.Parallel()

	p := FromValue[int, string](12)
	s := Map(p, strconv.Itoa)
	q := Then(s, func(v string) result.Result[int, string] {
		n, err := strconv.Atoi(v)
		if err != nil {
			return result.Failure[int, string](err.Error())
		}
		return result.Success[int, string](n)
	})

	got := Finally(q,
		func(e string) string { return "failed: " + e },
		func(n int) string { return "ok: " + strconv.Itoa(n) })
	if got != "ok: 12" {
		t.Fatalf("expected 'ok: 12', got: %q", got)
	}
}
