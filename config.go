package splines

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/npillmayer/schuko"
)

// Configuration keys recognized by Configure.
const (
	KeyKnotEpsilon   = "splines.knot-epsilon"
	KeyPointEpsilon  = "splines.point-epsilon"
	KeyLengthEpsilon = "splines.length-epsilon"
	KeyDomainMin     = "splines.domain-min"
	KeyDomainMax     = "splines.domain-max"
)

// ErrConfiguration indicates an unusable configuration value.
var ErrConfiguration = errors.New("invalid splines configuration")

// Configure overrides the package tolerances from an application
// configuration. Keys which are not set keep their current value.
// If any value is invalid, no setting is changed.
//
// Configure is intended to be called once at program start, before any
// spline is created. The engine itself never writes these settings.
func Configure(conf schuko.Configuration) error {
	if conf == nil {
		return nil
	}
	knotEps, err := positiveValue(conf, KeyKnotEpsilon, KnotEpsilon)
	if err != nil {
		return err
	}
	pointEps, err := positiveValue(conf, KeyPointEpsilon, PointEpsilon)
	if err != nil {
		return err
	}
	lengthEps, err := positiveValue(conf, KeyLengthEpsilon, LengthEpsilon)
	if err != nil {
		return err
	}
	dmin, err := floatValue(conf, KeyDomainMin, DomainMin)
	if err != nil {
		return err
	}
	dmax, err := floatValue(conf, KeyDomainMax, DomainMax)
	if err != nil {
		return err
	}
	if dmax-dmin <= knotEps {
		return fmt.Errorf("%w: empty domain [%g,%g]", ErrConfiguration, dmin, dmax)
	}
	KnotEpsilon, PointEpsilon, LengthEpsilon = knotEps, pointEps, lengthEps
	DomainMin, DomainMax = dmin, dmax
	tracer().Infof("configured knot-ε=%g, point-ε=%g, length-ε=%g, domain=[%g,%g]",
		KnotEpsilon, PointEpsilon, LengthEpsilon, DomainMin, DomainMax)
	return nil
}

func floatValue(conf schuko.Configuration, key string, deflt float64) (float64, error) {
	if !conf.IsSet(key) {
		return deflt, nil
	}
	v, err := strconv.ParseFloat(conf.GetString(key), 64)
	if err != nil {
		return deflt, fmt.Errorf("%w: %s: %v", ErrConfiguration, key, err)
	}
	return v, nil
}

func positiveValue(conf schuko.Configuration, key string, deflt float64) (float64, error) {
	v, err := floatValue(conf, key, deflt)
	if err != nil {
		return deflt, err
	}
	if v <= 0 {
		return deflt, fmt.Errorf("%w: %s must be positive, is %g", ErrConfiguration, key, v)
	}
	return v, nil
}
