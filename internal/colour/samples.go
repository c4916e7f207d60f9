package colour

// Sample is a background colour with the text tone expected to read best on it.
type Sample struct {
	Hex      string `json:"hex"`
	Expected Tone   `json:"expected"`
}

// SampleReport is one row of the contrast demonstration table.
type SampleReport struct {
	Background string  `json:"background"`
	Foreground string  `json:"foreground"`
	TextColour string  `json:"text_colour"`
	Expected   Tone    `json:"expected"`
	Result     Tone    `json:"result"`
	Pass       bool    `json:"pass"`
	Ratio      float64 `json:"ratio"`
	NormalText Rating  `json:"normal_text"`
	LargeText  Rating  `json:"large_text"`
}

var demoSamples = []Sample{
	{Hex: "#aa0e2d", Expected: Light},
	{Hex: "#99300b", Expected: Light},
	{Hex: "#7f472f", Expected: Light},
	{Hex: "#6c5009", Expected: Light},
	{Hex: "#DDCA1D", Expected: Dark},
	{Hex: "#005031", Expected: Light},
	{Hex: "#355f4a", Expected: Light},
	{Hex: "#0f330f", Expected: Light},
	{Hex: "#47582d", Expected: Light},
	{Hex: "#20603C", Expected: Light},
	{Hex: "#0000B5", Expected: Light},
	{Hex: "#05529e", Expected: Light},
	{Hex: "#2340b3", Expected: Light},
	{Hex: "#3e576f", Expected: Light},
	{Hex: "#0A3055", Expected: Light},
	{Hex: "#8e2f63", Expected: Light},
	{Hex: "#7c14a9", Expected: Light},
	{Hex: "#693e93", Expected: Light},
	{Hex: "#744474", Expected: Light},
	{Hex: "#3D2F5B", Expected: Light},
	{Hex: "#1A1A1A", Expected: Light},
	{Hex: "#434c65", Expected: Light},
	{Hex: "#bdbdbd", Expected: Dark},
	{Hex: "#E6E6E6", Expected: Dark},
}

// DemoSamples returns the backgrounds of the contrast demonstration table.
func DemoSamples() []Sample {
	out := make([]Sample, len(demoSamples))
	copy(out, demoSamples)
	return out
}

// EvaluateSample computes the demonstration table row for s. The ratio is
// rounded to two decimals before it is rated.
func EvaluateSample(s Sample) SampleReport {
	text := TextColour(s.Hex)
	fg := HSLStringToHex(text)
	result := BestContrast(s.Hex)
	ratio := toFixed(Contrast(s.Hex, fg), 2)

	return SampleReport{
		Background: s.Hex,
		Foreground: fg,
		TextColour: text,
		Expected:   s.Expected,
		Result:     result,
		Pass:       result == s.Expected,
		Ratio:      ratio,
		NormalText: RateNormalText(ratio),
		LargeText:  RateLargeText(ratio),
	}
}
