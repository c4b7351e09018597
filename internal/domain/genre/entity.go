package genre

import (
	"strings"
)

// Genre 图书分类
// Name是规范化后的名称(去首尾空格+小写),全局唯一
type Genre struct {
	ID   int64
	Name string
}

// NormalizeName 规范化分类名
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// NormalizeNames 规范化并去重,保持首次出现的顺序,丢弃空名称
func NormalizeNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		n = NormalizeName(n)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

// UniqueIDs 合并多组ID并去重,保持顺序
func UniqueIDs(groups ...[]int64) []int64 {
	seen := make(map[int64]struct{})
	out := make([]int64, 0)
	for _, g := range groups {
		for _, id := range g {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}
	return out
}
