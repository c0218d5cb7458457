package parts

import "fmt"

// Dielectric is the temperature characteristic class of a ceramic capacitor.
type Dielectric uint8

const (
	SL Dielectric = iota
	CH
	CJ
	UJ
	CK
	C0G
	X8G
	U2J
	B
	X5R
	X6S
	X6T
	X7R
	X7S
	X7T
	X7U
	R
	Y5V
	dielectricCount
)

var dielectricNames = [dielectricCount]string{
	SL:  "SL",
	CH:  "CH",
	CJ:  "CJ",
	UJ:  "UJ",
	CK:  "CK",
	C0G: "C0G",
	X8G: "X8G",
	U2J: "U2J",
	B:   "B",
	X5R: "X5R",
	X6S: "X6S",
	X6T: "X6T",
	X7R: "X7R",
	X7S: "X7S",
	X7T: "X7T",
	X7U: "X7U",
	R:   "R",
	Y5V: "Y5V",
}

func AllDielectrics() []Dielectric {
	all := make([]Dielectric, 0, dielectricCount)
	for d := Dielectric(0); d < dielectricCount; d++ {
		all = append(all, d)
	}
	return all
}

func (d Dielectric) Valid() bool { return d < dielectricCount }

// Format renders the class name; both styles use it.
func (d Dielectric) Format(Style) string {
	if !d.Valid() {
		return fmt.Sprintf("Dielectric(%d)", uint8(d))
	}
	return dielectricNames[d]
}

func (d Dielectric) String() string { return d.Format(Verbose) }

func ParseDielectric(s string) (Dielectric, bool) {
	for d := Dielectric(0); d < dielectricCount; d++ {
		if dielectricNames[d] == s {
			return d, true
		}
	}
	return 0, false
}
