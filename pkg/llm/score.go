package llm

import (
	"strconv"
	"strings"
)

// ParseScore 解析模型返回的质量得分，统一到0-1刻度
//
// 模型有时按0-100刻度作答，(1,100]区间的数值除以100归一。
// 非数字或超出刻度的内容返回(0, false)，由调用方落到默认得分分支。
func ParseScore(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}

	if v < 0 || v > 100 {
		return 0, false
	}

	if v > 1 {
		v = v / 100
	}

	return v, true
}
