// Package chart formats aggregate counts for the Google chart services:
// static pie chart image URLs and Google Visualization data tables.
package chart

import (
	"net/url"
	"strings"
)

// ChartURL is the Google image chart endpoint.
const ChartURL = "https://chart.googleapis.com/chart"

// extendedChars are the 64 symbols of Google's extended data encoding.
const extendedChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-."

// MaxExtendedValue is the largest value the extended encoding can carry.
const MaxExtendedValue = len(extendedChars)*len(extendedChars) - 1

// ExtendedEncoding encodes values with two symbols each. Values are
// clamped to 0..MaxExtendedValue.
func ExtendedEncoding(values []int) string {
	var b strings.Builder
	b.Grow(2 * len(values))
	for _, v := range values {
		v = max(0, min(v, MaxExtendedValue))
		b.WriteByte(extendedChars[v/len(extendedChars)])
		b.WriteByte(extendedChars[v%len(extendedChars)])
	}
	return b.String()
}

// PieChartURL builds a 3D pie chart URL. data is already extended-encoded,
// size is "WxH" and labels are separated by "|".
func PieChartURL(data, size string, colors []string, labels string) string {
	q := url.Values{}
	q.Set("cht", "p3")
	q.Set("chd", "e:"+data)
	q.Set("chs", size)
	q.Set("chco", strings.Join(trimHashes(colors), ","))
	q.Set("chf", "bg,s,ffffff00")
	q.Set("chl", labels)
	return ChartURL + "?" + q.Encode()
}

func trimHashes(colors []string) []string {
	out := make([]string, len(colors))
	for i, c := range colors {
		out[i] = strings.TrimPrefix(c, "#")
	}
	return out
}
