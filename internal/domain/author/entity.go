package author

// 外部API约定的占位值
const (
	// SummaryNotFound 百科没有该作者的摘要
	SummaryNotFound = "Summary not found."

	// UnknownTitle 检索到作品但缺少标题
	UnknownTitle = "Unknown"
)

// Profile 作者信息(不落库,每次请求实时聚合)
// MostKnownWork为nil表示目录检索没有任何结果
type Profile struct {
	Name          string
	MostKnownWork *string
	ShortSummary  string
}

// Found 目录检索是否有结果
func (p *Profile) Found() bool {
	return p.MostKnownWork != nil
}
