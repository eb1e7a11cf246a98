package validation

import (
	"math"
	"reflect"
	"strconv"
	"strings"
)

// operand is the comparable form of a scalar value.
type operand struct {
	numeric bool
	integer bool
	i       int64
	f       float64
	text    string
}

func isScalar(value any) bool {
	if value == nil {
		return false
	}

	_, ok := toOperand(value)

	return ok
}

// lessOrEqual reports left <= right. Numbers, booleans and numeric strings
// compare numerically; anything else compares lexically. Nil is 0 against a
// number and "" otherwise. Non-scalar operands are never ordered.
func lessOrEqual(left, right any) bool {
	if left == nil && right == nil {
		return true
	}

	leftOperand, leftOK := toOperand(left)
	rightOperand, rightOK := toOperand(right)

	switch {
	case left == nil && rightOK:
		leftOperand, leftOK = zeroLike(rightOperand), true
	case right == nil && leftOK:
		rightOperand, rightOK = zeroLike(leftOperand), true
	}

	if !leftOK || !rightOK {
		return false
	}

	if leftOperand.numeric && rightOperand.numeric {
		if leftOperand.integer && rightOperand.integer {
			return leftOperand.i <= rightOperand.i
		}

		return leftOperand.f <= rightOperand.f
	}

	return strings.Compare(leftOperand.text, rightOperand.text) <= 0
}

func zeroLike(other operand) operand {
	if other.numeric {
		return operand{numeric: true, integer: true, i: 0, f: 0, text: "0"}
	}

	return operand{numeric: false, integer: false, i: 0, f: 0, text: ""}
}

func toOperand(value any) (operand, bool) {
	if value == nil {
		return operand{}, false
	}

	reflected := reflect.ValueOf(value)

	switch reflected.Kind() { //nolint:exhaustive // remaining kinds are not scalars
	case reflect.Bool:
		if reflected.Bool() {
			return integerOperand(1), true
		}

		return integerOperand(0), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return integerOperand(reflected.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		unsigned := reflected.Uint()
		if unsigned <= math.MaxInt64 {
			return integerOperand(int64(unsigned)), true
		}

		return floatOperand(float64(unsigned)), true
	case reflect.Float32, reflect.Float64:
		return floatOperand(reflected.Float()), true
	case reflect.String:
		return stringOperand(reflected.String()), true
	default:
		return operand{}, false
	}
}

func integerOperand(value int64) operand {
	return operand{numeric: true, integer: true, i: value, f: float64(value), text: strconv.FormatInt(value, 10)}
}

func floatOperand(value float64) operand {
	return operand{numeric: true, integer: false, i: 0, f: value, text: strconv.FormatFloat(value, 'f', -1, 64)}
}

func stringOperand(text string) operand {
	trimmed := strings.TrimSpace(text)

	if integer, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		numeric := integerOperand(integer)
		numeric.text = text

		return numeric
	}

	if float, err := strconv.ParseFloat(trimmed, 64); err == nil && !math.IsInf(float, 0) && !math.IsNaN(float) {
		numeric := floatOperand(float)
		numeric.text = text

		return numeric
	}

	return operand{numeric: false, integer: false, i: 0, f: 0, text: text}
}
