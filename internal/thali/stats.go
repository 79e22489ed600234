package thali

import "math"

// Summary holds aggregate statistics over a menu.
type Summary struct {
	TotalThalis int `json:"totalThalis" yaml:"totalThalis"`
	VegCount    int `json:"vegCount" yaml:"vegCount"`
	NonVegCount int `json:"nonVegCount" yaml:"nonVegCount"`

	// AvgPrice is the mean price with exactly two decimals.
	AvgPrice string `json:"avgPrice" yaml:"avgPrice"`

	Cheapest  float64  `json:"cheapest" yaml:"cheapest"`
	Costliest float64  `json:"costliest" yaml:"costliest"`
	Names     []string `json:"names" yaml:"names"`
}

// Stats summarizes thalis. It returns nil when there is nothing to summarize.
//
// The average is a running mean taken left to right,
// avg(i) = (avg(i-1)*i + price(i)) / (i+1). Do not replace it with sum/count;
// the two differ in the last bit for some inputs. A NaN price poisons the
// average, the cheapest and the costliest values.
func Stats(thalis []Thali) *Summary {
	if len(thalis) == 0 {
		return nil
	}

	summary := &Summary{
		TotalThalis: len(thalis),
		Names:       make([]string, 0, len(thalis)),
	}

	avg := thalis[0].Price
	cheapest, costliest := avg, avg

	for i, t := range thalis {
		if t.IsVeg {
			summary.VegCount++
		} else {
			summary.NonVegCount++
		}
		summary.Names = append(summary.Names, t.Name)

		if i == 0 {
			continue
		}
		// The conversion rounds the product before the add; no fused multiply-add.
		avg = (float64(avg*float64(i)) + t.Price) / float64(i+1)
		cheapest = math.Min(cheapest, t.Price)
		costliest = math.Max(costliest, t.Price)
	}

	summary.AvgPrice = FormatFixed(avg, 2)
	summary.Cheapest = cheapest
	summary.Costliest = costliest

	return summary
}

// StatsOf is Stats over a decoded value. Anything that is not a non-empty
// sequence (see Collect) yields nil.
func StatsOf(v any) *Summary {
	thalis, ok := Collect(v)
	if !ok {
		return nil
	}
	return Stats(thalis)
}
