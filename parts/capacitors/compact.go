package capacitors

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/xoviat/capcode/parts"
)

// Compact codes look like C0201_220NC10VX5R:
//
//	C<eia>_ <capacitance infix> <tolerance class> <voltage infix> <dielectric>
//
// The dielectric is anchored to the end of the input so that single letter
// classes (B, R) are not confused with units or tolerance classes.
var compactLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Dielectric", Pattern: `(?:C0G|X8G|U2J|X5R|X6S|X6T|X7R|X7S|X7T|X7U|Y5V|SL|CH|CJ|UJ|CK|B|R)\z`},
	{Name: "Size", Pattern: `C[0-9]+_`},
	{Name: "Capacitance", Pattern: `NonSTD|[0-9]+[PNU][0-9]*`},
	{Name: "Voltage", Pattern: `[0-9]+V(?:AC|[0-9]+)?`},
	{Name: "Class", Pattern: `[UPSC]`},
})

type compactGrammar struct {
	Size        string `parser:"@Size"`
	Capacitance string `parser:"@Capacitance"`
	Class       string `parser:"@Class"`
	Voltage     string `parser:"@Voltage"`
	Dielectric  string `parser:"@Dielectric"`
}

var compactParser = participle.MustBuild[compactGrammar](participle.Lexer(compactLexer))

// CompactCode is what survives the compact rendering. The tolerance is
// reduced to its class, so it cannot be turned back into a Capacitor.
type CompactCode struct {
	Size        parts.EIAInchCode
	Capacitance parts.Capacitance
	Class       parts.ToleranceClass
	Voltage     parts.RatedVoltage
	Dielectric  parts.Dielectric
}

func (c Capacitor) CompactCode() CompactCode {
	return CompactCode{
		Size:        c.Size,
		Capacitance: c.Capacitance,
		Class:       c.Tolerance.Class(),
		Voltage:     c.Voltage,
		Dielectric:  c.Dielectric,
	}
}

func (cc CompactCode) String() string {
	return fmt.Sprintf("C%s_%s%s%s%s",
		cc.Size,
		cc.Capacitance.Format(parts.Compact),
		cc.Class,
		cc.Voltage.Format(parts.Compact),
		cc.Dielectric.Format(parts.Compact),
	)
}

func ParseCompact(code string) (CompactCode, error) {
	ast, err := compactParser.ParseString("", code)
	if err != nil {
		return CompactCode{}, fmt.Errorf("compact code %q: %w", code, err)
	}

	size, ok := parts.ParseEIAInchCode(strings.TrimSuffix(strings.TrimPrefix(ast.Size, "C"), "_"))
	if !ok {
		return CompactCode{}, fmt.Errorf("compact code %q: unknown size %s", code, ast.Size)
	}

	capacitance, err := parts.ParseCompactCapacitance(ast.Capacitance)
	if err != nil {
		return CompactCode{}, fmt.Errorf("compact code %q: %w", code, err)
	}

	class, ok := parts.ParseToleranceClass(ast.Class)
	if !ok {
		return CompactCode{}, fmt.Errorf("compact code %q: unknown tolerance class %s", code, ast.Class)
	}

	voltage, err := parts.ParseRatedVoltage(ast.Voltage)
	if err != nil {
		return CompactCode{}, fmt.Errorf("compact code %q: %w", code, err)
	}

	dielectric, ok := parts.ParseDielectric(ast.Dielectric)
	if !ok {
		return CompactCode{}, fmt.Errorf("compact code %q: unknown dielectric %s", code, ast.Dielectric)
	}

	return CompactCode{
		Size:        size,
		Capacitance: capacitance,
		Class:       class,
		Voltage:     voltage,
		Dielectric:  dielectric,
	}, nil
}
