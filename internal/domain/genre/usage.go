package genre

import (
	"math"
	"sort"
)

// Count 单个分类的关联次数(仓储查询结果)
type Count struct {
	ID    int64
	Name  string
	Count int64
}

// Usage 分类使用统计
type Usage struct {
	ID         int64
	Name       string
	Count      int64
	Percentage float64
}

// ComputeUsage 计算每个分类的占比
// 规则:
// 1. total = 所有分类关联次数之和(即book_genres总行数)
// 2. percentage = round(count/total*100, 2),total为0时为0
// 3. 按count降序,count相同按名称升序
func ComputeUsage(counts []Count) []Usage {
	var total int64
	for _, c := range counts {
		total += c.Count
	}

	usages := make([]Usage, len(counts))
	for i, c := range counts {
		usages[i] = Usage{
			ID:         c.ID,
			Name:       c.Name,
			Count:      c.Count,
			Percentage: percentage(c.Count, total),
		}
	}

	sort.SliceStable(usages, func(i, j int) bool {
		if usages[i].Count != usages[j].Count {
			return usages[i].Count > usages[j].Count
		}
		return usages[i].Name < usages[j].Name
	})

	return usages
}

func percentage(count, total int64) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(count)/float64(total)*100*100) / 100
}
