package world

import (
	"fmt"
)

// ParseError is returned when a Universal World Profile string fails to
// parse. Callers treat it as non-fatal: per the server's error policy the
// affected World is simply left Unset and the pipeline continues.
type ParseError struct {
	Kind  string // InvalidLength | InvalidDigit | InvalidPort
	Input string
	Msg   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("world: %s: %s (input %q)", e.Kind, e.Msg, e.Input)
}

const (
	posStarport = 0
	posSize     = 1
	posAtm      = 2
	posHyd      = 3
	posPop      = 4
	posGov      = 5
	posLaw      = 6
	posDash     = 7
	posTech     = 8
	uwpLength   = 9
)

var validStarports = map[byte]struct{}{
	'A': {}, 'B': {}, 'C': {}, 'D': {}, 'E': {}, 'X': {}, 'Y': {}, 'H': {}, 'G': {}, 'F': {},
}

// World is a parsed, trade-class-annotated world profile. A zero-value
// World (with Set == false) means Unset per the data model's invariant:
// a world is only "set" once name is non-empty and its UWP parsed cleanly.
type World struct {
	Set bool

	Name string
	UWP  string

	Starport byte
	Size     int
	Atm      int
	Hyd      int
	Pop      int
	Gov      int
	Law      int
	Tech     int

	Classes ClassSet
}

// Unset is the zero-value World with Set explicitly false, the value this
// package returns whenever name or uwp fail the "set" invariant.
func Unset() World {
	return World{Set: false}
}

// Parse validates and decodes a 9-character UWP string into a World, then
// derives its trade classes. isMainworld gates the Asteroid predicate,
// which per spec is only meaningful for a system's mainworld, not its
// satellites.
func Parse(name, uwp string, isMainworld bool) (World, error) {
	if len(uwp) != uwpLength {
		return World{}, &ParseError{Kind: "InvalidLength", Input: uwp, Msg: fmt.Sprintf("want %d chars, got %d", uwpLength, len(uwp))}
	}
	if uwp[posDash] != '-' {
		return World{}, &ParseError{Kind: "InvalidLength", Input: uwp, Msg: "missing dash at position 7"}
	}
	starport := uwp[posStarport]
	if _, ok := validStarports[starport]; !ok {
		return World{}, &ParseError{Kind: "InvalidPort", Input: uwp, Msg: fmt.Sprintf("unknown starport code %q", string(starport))}
	}

	digitAt := func(pos int) (int, error) {
		v, err := hexDigit(uwp[pos])
		if err != nil {
			return 0, &ParseError{Kind: "InvalidDigit", Input: uwp, Msg: fmt.Sprintf("position %d: %v", pos, err)}
		}
		return v, nil
	}

	size, err := digitAt(posSize)
	if err != nil {
		return World{}, err
	}
	atm, err := digitAt(posAtm)
	if err != nil {
		return World{}, err
	}
	hyd, err := digitAt(posHyd)
	if err != nil {
		return World{}, err
	}
	pop, err := digitAt(posPop)
	if err != nil {
		return World{}, err
	}
	gov, err := digitAt(posGov)
	if err != nil {
		return World{}, err
	}
	law, err := digitAt(posLaw)
	if err != nil {
		return World{}, err
	}
	tech, err := digitAt(posTech)
	if err != nil {
		return World{}, err
	}

	w := World{
		Set:      name != "",
		Name:     name,
		UWP:      uwp,
		Starport: starport,
		Size:     size,
		Atm:      atm,
		Hyd:      hyd,
		Pop:      pop,
		Gov:      gov,
		Law:      law,
		Tech:     tech,
	}
	w.Classes = deriveTradeClasses(w, isMainworld)
	return w, nil
}

func hexDigit(b byte) (int, error) {
	switch {
	case b >= '0' && b <= '9':
		return int(b - '0'), nil
	case b >= 'A' && b <= 'F':
		return int(b-'A') + 10, nil
	case b >= 'a' && b <= 'f':
		return int(b-'a') + 10, nil
	default:
		return 0, fmt.Errorf("not a hex digit: %q", string(b))
	}
}

func between(v, lo, hi int) bool { return v >= lo && v <= hi }

func in(v int, set ...int) bool {
	for _, s := range set {
		if v == s {
			return true
		}
	}
	return false
}

// deriveTradeClasses applies the predicate table from §4.B of the spec.
// AmberZone/RedZone are deliberately absent here: they are injected from
// the external zone field by the caller, never derived from the UWP.
func deriveTradeClasses(w World, isMainworld bool) ClassSet {
	classes := make(ClassSet)
	add := func(c TradeClass) { classes[c] = struct{}{} }

	if between(w.Atm, 4, 9) && between(w.Hyd, 4, 8) && between(w.Pop, 5, 7) {
		add(Agricultural)
	}
	if w.Atm <= 3 && w.Hyd <= 3 && w.Pop >= 6 {
		add(NonAgricultural)
	}
	if in(w.Atm, 0, 1, 2, 4, 7, 9) && w.Pop >= 9 {
		add(Industrial)
	}
	if between(w.Pop, 1, 6) {
		add(NonIndustrial)
	}
	if in(w.Atm, 6, 8) && between(w.Pop, 6, 8) && between(w.Gov, 4, 9) {
		add(Rich)
	}
	if w.Pop > 0 && between(w.Atm, 2, 5) && w.Hyd <= 3 {
		add(Poor)
	}
	if w.Hyd >= 10 {
		add(WaterWorld)
	}
	if w.Hyd <= 0 && w.Atm > 1 {
		add(Desert)
	}
	if w.Atm <= 1 && w.Hyd >= 10 {
		add(IceCapped)
	}
	if w.Atm <= 0 && w.Pop > 1 {
		add(Vacuum)
	}
	if w.Pop >= 9 {
		add(HighPopulation)
	}
	if between(w.Pop, 1, 3) {
		add(LowPopulation)
	}
	if w.Tech >= 12 {
		add(HighTech)
	}
	if w.Pop >= 1 && w.Tech <= 5 {
		add(LowTech)
	}
	if w.Atm >= 10 && w.Hyd >= 1 {
		add(FluidOceans)
	}
	if between(w.Size, 6, 8) && in(w.Atm, 5, 6, 8) && between(w.Hyd, 5, 7) {
		add(Garden)
	}
	if w.Size == 0 && w.Atm == 0 && w.Hyd == 0 && isMainworld {
		add(Asteroid)
	}
	if w.Pop == 0 && w.Gov == 0 && w.Law == 0 {
		add(Barren)
	}

	return classes
}

// ApplyZone folds the externally-supplied zone classification into the
// world's class set. Unlike the UWP-derived classes, zone is never derived;
// it always comes from the caller (the external map lookup, out of scope
// here per §1).
func ApplyZone(classes ClassSet, zone Zone) ClassSet {
	switch zone {
	case ZoneAmber:
		classes[AmberZone] = struct{}{}
	case ZoneRed:
		classes[RedZone] = struct{}{}
	}
	return classes
}

// Zone is a world's traffic-classification as known to the client.
type Zone string

const (
	ZoneGreen Zone = "Green"
	ZoneAmber Zone = "Amber"
	ZoneRed   Zone = "Red"
)

// ToUWP reconstructs the 9-character profile string from the parsed
// digits, the inverse of Parse. Used by the round-trip property in §8.
func (w World) ToUWP() string {
	if !w.Set {
		return ""
	}
	digit := func(v int) byte {
		if v < 10 {
			return byte('0' + v)
		}
		return byte('A' + (v - 10))
	}
	buf := make([]byte, uwpLength)
	buf[posStarport] = w.Starport
	buf[posSize] = digit(w.Size)
	buf[posAtm] = digit(w.Atm)
	buf[posHyd] = digit(w.Hyd)
	buf[posPop] = digit(w.Pop)
	buf[posGov] = digit(w.Gov)
	buf[posLaw] = digit(w.Law)
	buf[posDash] = '-'
	buf[posTech] = digit(w.Tech)
	return string(buf)
}
