package number

import (
	"math"
	"strconv"
)

var epsilon = 0.000001

func IsZero(f float64) bool {
	return math.Abs(f) < epsilon
}

func FloatToStr(f float64, precision int) string {
	return strconv.FormatFloat(f, 'f', precision, 64)
}

func DegreeToRadian(degree float64) float64 {
	return degree * math.Pi / 180.0
}

func RadianToDegree(radian float64) float64 {
	return radian * 180.0 / math.Pi
}

func Map(value, fromA, fromB, toA, toB float64) float64 {
	return toA + (toB-toA)*((value-fromA)/(fromB-fromA))
}
