package state

import "math"

// Easing names a function shaping a 0..1 progress value.
type Easing int

const (
	EaseLinear Easing = iota
	EaseInQuad
	EaseOutQuad
	EaseInOutQuad
	EaseInCubic
	EaseOutCubic
	EaseInOutCubic
	EaseInQuart
	EaseOutQuart
	EaseInOutQuart
	EaseInQuint
	EaseOutQuint
	EaseInOutQuint
	EaseInSine
	EaseOutSine
	EaseInOutSine
	EaseInExpo
	EaseOutExpo
)

var easingNames = [...]string{
	EaseLinear:     "linear",
	EaseInQuad:     "easeInQuad",
	EaseOutQuad:    "easeOutQuad",
	EaseInOutQuad:  "easeInOutQuad",
	EaseInCubic:    "easeInCubic",
	EaseOutCubic:   "easeOutCubic",
	EaseInOutCubic: "easeInOutCubic",
	EaseInQuart:    "easeInQuart",
	EaseOutQuart:   "easeOutQuart",
	EaseInOutQuart: "easeInOutQuart",
	EaseInQuint:    "easeInQuint",
	EaseOutQuint:   "easeOutQuint",
	EaseInOutQuint: "easeInOutQuint",
	EaseInSine:     "easeInSine",
	EaseOutSine:    "easeOutSine",
	EaseInOutSine:  "easeInOutSine",
	EaseInExpo:     "easeInExpo",
	EaseOutExpo:    "easeOutExpo",
}

var easingFuncs = [...]func(float64) float64{
	EaseLinear:  func(t float64) float64 { return t },
	EaseInQuad:  func(t float64) float64 { return t * t },
	EaseOutQuad: func(t float64) float64 { return t * (2 - t) },
	EaseInOutQuad: func(t float64) float64 {
		if t < 0.5 {
			return 2 * t * t
		}
		return -1 + (4-2*t)*t
	},
	EaseInCubic: func(t float64) float64 { return t * t * t },
	EaseOutCubic: func(t float64) float64 {
		u := t - 1
		return u*u*u + 1
	},
	EaseInOutCubic: func(t float64) float64 {
		if t < 0.5 {
			return 4 * t * t * t
		}
		return (t-1)*(2*t-2)*(2*t-2) + 1
	},
	EaseInQuart: func(t float64) float64 { return t * t * t * t },
	EaseOutQuart: func(t float64) float64 {
		u := t - 1
		return 1 - u*u*u*u
	},
	EaseInOutQuart: func(t float64) float64 {
		if t < 0.5 {
			return 8 * t * t * t * t
		}
		u := t - 1
		return 1 - 8*u*u*u*u
	},
	EaseInQuint: func(t float64) float64 { return t * t * t * t * t },
	EaseOutQuint: func(t float64) float64 {
		u := t - 1
		return 1 + u*u*u*u*u
	},
	EaseInOutQuint: func(t float64) float64 {
		if t < 0.5 {
			return 16 * t * t * t * t * t
		}
		u := t - 1
		return 1 + 16*u*u*u*u*u
	},
	EaseInSine:    func(t float64) float64 { return 1 - math.Cos(t*math.Pi/2) },
	EaseOutSine:   func(t float64) float64 { return math.Sin(t * math.Pi / 2) },
	EaseInOutSine: func(t float64) float64 { return -(math.Cos(math.Pi*t) - 1) / 2 },
	EaseInExpo: func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		return math.Pow(2, 10*t-10)
	},
	EaseOutExpo: func(t float64) float64 {
		if t >= 1 {
			return 1
		}
		return 1 - math.Pow(2, -10*t)
	},
}

// Easings lists every known easing in declaration order.
func Easings() []Easing {
	out := make([]Easing, len(easingNames))
	for i := range easingNames {
		out[i] = Easing(i)
	}
	return out
}

func (e Easing) valid() bool { return e >= 0 && int(e) < len(easingFuncs) }

// Apply evaluates the easing at t. Unknown values behave as linear.
func (e Easing) Apply(t float64) float64 {
	if !e.valid() {
		return t
	}
	return easingFuncs[e](t)
}

func (e Easing) String() string {
	if !e.valid() {
		return easingNames[EaseLinear]
	}
	return easingNames[e]
}

func (e Easing) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// UnmarshalText falls back to linear for names it does not know.
func (e *Easing) UnmarshalText(text []byte) error {
	*e = ParseEasing(string(text))
	return nil
}

// ParseEasing returns the easing called name, or EaseLinear.
func ParseEasing(name string) Easing {
	for i, n := range easingNames {
		if n == name {
			return Easing(i)
		}
	}
	return EaseLinear
}
