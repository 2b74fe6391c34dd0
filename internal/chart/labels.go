package chart

import (
	"fmt"
	"sort"
	"strings"

	"github.com/san-kum/typhoonviz/internal/dataset"
)

// LabelSet carries every user-visible string a chart draws. Titles are keyed
// by chart name and formatted with the first and last year.
type LabelSet struct {
	Name         string
	Titles       map[string]string
	Subtitle     string
	Play         string
	Pause        string
	YearCount    string // year, count
	HeartMarker  string // year, count
	ClusterHover string // year, count
	Detail       string // year, count, names, max wind, damage
	Annotation   string
	AllYears     string
	XAxis        string
	YAxis        string
}

var English = LabelSet{
	Name: "en",
	Titles: map[string]string{
		"flow":        "Hong Kong Typhoon Data Flow (%d-%d)",
		"heart":       "Hong Kong Typhoon Data Visualization (%d-%d) - Animated Heart Shape",
		"interactive": "🌀 Hong Kong Typhoon Data Interactive Flow Visualization (%d-%d)",
		"star":        "Hong Kong Typhoon Data Star Map (%d-%d)",
	},
	Subtitle:     "Click data points for details, use controls below to filter years",
	Play:         "Play",
	Pause:        "Pause",
	YearCount:    "%d: %d typhoons",
	HeartMarker:  "Year %d<br>Typhoons: %d",
	ClusterHover: "%d: %d typhoons",
	Detail:       "<b>%d Typhoon Data</b><br>Typhoon Count: %d<br>Major Typhoons: %s<br>Max Wind Speed: %d km/h<br>Damage Level: %s",
	Annotation:   "📊 Data point size represents typhoon count<br>💫 Hover for detailed information<br>🖱️ Click data points to highlight",
	AllYears:     "Show All Years",
	XAxis:        "X",
	YAxis:        "Y",
}

var Chinese = LabelSet{
	Name: "zh",
	Titles: map[string]string{
		"flow":        "香港台风数据流体图 (%d-%d)",
		"heart":       "香港台风数据心形动画 (%d-%d)",
		"interactive": "🌀 香港台风数据交互式流体图 (%d-%d)",
		"star":        "香港台风数据星空图 (%d-%d)",
	},
	Subtitle:     "点击数据点查看详情，使用下方控件筛选年份",
	Play:         "播放动画",
	Pause:        "暂停",
	YearCount:    "%d: %d台风",
	HeartMarker:  "%d年<br>台风: %d",
	ClusterHover: "%d年: %d个台风",
	Detail:       "<b>%d年台风数据</b><br>台风数量: %d<br>主要台风: %s<br>最大风速: %d km/h<br>灾害等级: %s",
	Annotation:   "📊 数据点大小代表台风数量<br>💫 悬停查看详细信息<br>🖱️ 点击数据点高亮显示",
	AllYears:     "全部年份",
	XAxis:        "X轴",
	YAxis:        "Y轴",
}

var labelSets = map[string]LabelSet{
	English.Name: English,
	Chinese.Name: Chinese,
}

// Labels looks up a built-in label set by name.
func Labels(name string) (LabelSet, error) {
	ls, ok := labelSets[strings.ToLower(name)]
	if !ok {
		return LabelSet{}, fmt.Errorf("%w: %s (available: %v)", ErrUnknownLabels, name, LabelNames())
	}
	return ls, nil
}

func LabelNames() []string {
	names := make([]string, 0, len(labelSets))
	for name := range labelSets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (l LabelSet) Title(chart string, ds *dataset.Dataset) string {
	format, ok := l.Titles[chart]
	if !ok {
		format = "%d-%d"
	}
	first, last := ds.Span()
	return fmt.Sprintf(format, first, last)
}

func (l LabelSet) DetailText(rec dataset.YearlyRecord, d dataset.Detail) string {
	names := d.Names
	if len(names) > 3 {
		names = names[:3]
	}
	return fmt.Sprintf(l.Detail, rec.Year, rec.Count, strings.Join(names, ", "), d.MaxWind, d.Damage)
}
