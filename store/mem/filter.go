package mem

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pkg/errors"

	nt "tablo/entity"
)

type getter func(field string) (nt.Value, error)

func eval(f nt.Filter, get getter) (ok bool, err error) {

	switch f.Op {
	case nt.And:
		for _, child := range f.Children {
			ok, err = eval(child, get)
			if err != nil || !ok {
				return
			}
		}
		return true, nil

	case nt.Or:
		for _, child := range f.Children {
			ok, err = eval(child, get)
			if err != nil || ok {
				return
			}
		}
		return len(f.Children) == 0, nil

	case nt.Not:
		if len(f.Children) == 0 {
			return true, nil
		}
		ok, err = eval(f.Children[0], get)
		return !ok, err
	}

	val, err := get(f.Field)
	if err != nil {
		return
	}

	have, want := val.String(), fmt.Sprintf("%v", f.Value)

	switch f.Op {
	case nt.Eq:
		ok = have == want
	case nt.Ne:
		ok = have != want
	case nt.Gt:
		ok = compare(val, f.Value) > 0
	case nt.Gte:
		ok = compare(val, f.Value) >= 0
	case nt.Lt:
		ok = compare(val, f.Value) < 0
	case nt.Lte:
		ok = compare(val, f.Value) <= 0
	case nt.Contains:
		ok = strings.Contains(strings.ToLower(have), strings.ToLower(want))
	case nt.Match:
		var rx *regexp.Regexp
		rx, err = regexp.Compile(want)
		if err != nil {
			err = errors.Wrapf(err, "failed to compile %q", want)
			return
		}
		ok = rx.MatchString(have)
	default:
		err = errors.Errorf("unknown filter op: %d", f.Op)
	}
	return
}

// compare orders numerically when both sides are numbers, else as text.
func compare(val nt.Value, raw any) int {

	have, err1 := val.Number()
	want, err2 := nt.Value{Raw: raw}.Number()
	if err1 == nil && err2 == nil {
		switch {
		case have < want:
			return -1
		case have > want:
			return 1
		}
		return 0
	}

	return strings.Compare(val.String(), fmt.Sprintf("%v", raw))
}

func validate(f nt.Filter) (err error) {

	if f.Op == nt.Match {
		_, err = regexp.Compile(fmt.Sprintf("%v", f.Value))
		err = errors.Wrapf(err, "bad pattern for %s", f.Field)
		return
	}

	for _, child := range f.Children {
		err = validate(child)
		if err != nil {
			return
		}
	}
	return
}
