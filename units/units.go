// Package units wraps the raw integer quantities carried on the DiveCAN
// bus in small typed newtypes so callers cannot mix, say, a millibar value
// with a decibar one by accident.
package units

import "fmt"

// Millibar is an absolute or gauge pressure in thousandths of a bar.
type Millibar uint16

func (m Millibar) Raw() uint16   { return uint16(m) }
func (m Millibar) String() string { return fmt.Sprintf("%d mbar", uint16(m)) }

// Decibar is a pressure in tenths of a bar, used for tank pressure.
type Decibar uint16

func (d Decibar) Raw() uint16   { return uint16(d) }
func (d Decibar) String() string { return fmt.Sprintf("%d dbar", uint16(d)) }

// Millivolt is a voltage in thousandths of a volt.
type Millivolt uint16

func (m Millivolt) Raw() uint16   { return uint16(m) }
func (m Millivolt) String() string { return fmt.Sprintf("%d mV", uint16(m)) }

// CentiMillivolt is a cell voltage in hundredths of a millivolt, the unit
// DiveCAN uses for O2 cell readings.
type CentiMillivolt uint16

func (c CentiMillivolt) Raw() uint16 { return uint16(c) }
func (c CentiMillivolt) String() string {
	return fmt.Sprintf("%.2f mV", float64(c)/100)
}

// Decivolt is a voltage in tenths of a volt, used for battery/solenoid
// supply readings.
type Decivolt uint8

func (d Decivolt) Raw() uint8   { return uint8(d) }
func (d Decivolt) String() string { return fmt.Sprintf("%.1f V", float64(d)/10) }

// Milliamp is a current in thousandths of an amp.
type Milliamp uint16

func (m Milliamp) Raw() uint16   { return uint16(m) }
func (m Milliamp) String() string { return fmt.Sprintf("%d mA", uint16(m)) }

// Millisecond is a duration in thousandths of a second.
type Millisecond uint16

func (m Millisecond) Raw() uint16   { return uint16(m) }
func (m Millisecond) String() string { return fmt.Sprintf("%d ms", uint16(m)) }

// PpO2Tenths is a partial pressure of oxygen in tenths of a bar (the
// conventional ppO2 x10 representation used throughout DiveCAN).
type PpO2Tenths uint8

func (p PpO2Tenths) Raw() uint8   { return uint8(p) }
func (p PpO2Tenths) String() string { return fmt.Sprintf("%.1f", float64(p)/10) }

// FO2Percent is a fraction of oxygen expressed as an integer percentage
// (FO2 x100 convention: 100 == 100% O2... actually stored as whole percent).
type FO2Percent uint8

func (f FO2Percent) Raw() uint8   { return uint8(f) }
func (f FO2Percent) String() string { return fmt.Sprintf("%d%%", uint8(f)) }
