// Package i18n provides the en/zh label bundles used by the report layer.
//
// A Bundle is an explicit value passed into presentation calls; there is no
// process-wide language state, and the numeric engine never touches labels.
package i18n

// Lang is a supported language code.
type Lang string

const (
	LangZH Lang = "zh"
	LangEN Lang = "en"
)

// DefaultLang is used when an unsupported code is requested.
const DefaultLang = LangZH

// Bundle resolves label keys for one language.
type Bundle struct {
	lang Lang
}

// NewBundle returns a bundle for the given language code,
// falling back to the default for unsupported codes.
func NewBundle(lang string) *Bundle {
	l := Lang(lang)
	if l != LangZH && l != LangEN {
		l = DefaultLang
	}
	return &Bundle{lang: l}
}

// Lang returns the bundle's language code.
func (b *Bundle) Lang() Lang {
	return b.lang
}

// T resolves a dot-notation key ("metrics.total_return") to a label.
// Missing keys fall back to the default language, then to the key itself.
func (b *Bundle) T(key string) string {
	if v, ok := translations[b.lang][key]; ok {
		return v
	}
	if v, ok := translations[DefaultLang][key]; ok {
		return v
	}
	return key
}

var translations = map[Lang]map[string]string{
	LangZH: {
		"report.title":            "投资组合分析报告",
		"report.analysis_period":  "分析期间",
		"report.detailed_metrics": "详细指标",
		"report.chart_analysis":   "图表分析",
		"report.generated_by":     "由 quantanalysis 生成",

		"common.to":           "至",
		"common.trading_days": "交易日数",
		"common.days":         "天",
		"common.metric":       "指标",
		"common.value":        "数值",
		"common.portfolio":    "投资组合",
		"common.benchmark":    "基准",
		"common.generated_on": "生成时间",

		"categories.performance_summary": "业绩摘要",
		"categories.returns_stats":       "收益统计",
		"categories.risk_metrics":        "风险指标",
		"categories.performance_metrics": "绩效指标",
		"categories.drawdown_metrics":    "回撤指标",
		"categories.relative_metrics":    "相对指标",

		"metrics.total_return":      "总收益率",
		"metrics.cagr":              "年化收益率",
		"metrics.mean_return":       "平均收益率",
		"metrics.std_return":        "收益率标准差",
		"metrics.skewness":          "偏度",
		"metrics.kurtosis":          "峰度",
		"metrics.volatility":        "波动率",
		"metrics.max_drawdown":      "最大回撤",
		"metrics.avg_drawdown":      "平均回撤",
		"metrics.var_95":            "风险价值 (95%)",
		"metrics.cvar_95":           "条件风险价值 (95%)",
		"metrics.ulcer_index":       "溃疡指数",
		"metrics.sharpe":            "夏普比率",
		"metrics.sortino":           "索提诺比率",
		"metrics.calmar":            "卡玛比率",
		"metrics.omega":             "欧米茄比率",
		"metrics.recovery_factor":   "恢复因子",
		"metrics.alpha":             "阿尔法",
		"metrics.beta":              "贝塔",
		"metrics.excess_return":     "超额收益",
		"metrics.tracking_error":    "跟踪误差",
		"metrics.information_ratio": "信息比率",

		"charts.cumulative_returns": "累计收益",
		"charts.drawdown":           "回撤",
		"charts.daily_returns":      "日度收益率",
		"charts.weekly_returns":     "周度收益率",
		"charts.monthly_returns":    "月度收益率",
	},
	LangEN: {
		"report.title":            "Portfolio Analysis Report",
		"report.analysis_period":  "Analysis Period",
		"report.detailed_metrics": "Detailed Metrics",
		"report.chart_analysis":   "Chart Analysis",
		"report.generated_by":     "Generated by quantanalysis",

		"common.to":           "to",
		"common.trading_days": "Trading Days",
		"common.days":         "days",
		"common.metric":       "Metric",
		"common.value":        "Value",
		"common.portfolio":    "Portfolio",
		"common.benchmark":    "Benchmark",
		"common.generated_on": "Generated on",

		"categories.performance_summary": "Performance Summary",
		"categories.returns_stats":       "Return Statistics",
		"categories.risk_metrics":        "Risk Metrics",
		"categories.performance_metrics": "Performance Metrics",
		"categories.drawdown_metrics":    "Drawdown Metrics",
		"categories.relative_metrics":    "Relative Metrics",

		"metrics.total_return":      "Total Return",
		"metrics.cagr":              "CAGR",
		"metrics.mean_return":       "Mean Return",
		"metrics.std_return":        "Return Std Dev",
		"metrics.skewness":          "Skewness",
		"metrics.kurtosis":          "Kurtosis",
		"metrics.volatility":        "Volatility",
		"metrics.max_drawdown":      "Max Drawdown",
		"metrics.avg_drawdown":      "Avg Drawdown",
		"metrics.var_95":            "VaR (95%)",
		"metrics.cvar_95":           "CVaR (95%)",
		"metrics.ulcer_index":       "Ulcer Index",
		"metrics.sharpe":            "Sharpe Ratio",
		"metrics.sortino":           "Sortino Ratio",
		"metrics.calmar":            "Calmar Ratio",
		"metrics.omega":             "Omega Ratio",
		"metrics.recovery_factor":   "Recovery Factor",
		"metrics.alpha":             "Alpha",
		"metrics.beta":              "Beta",
		"metrics.excess_return":     "Excess Return",
		"metrics.tracking_error":    "Tracking Error",
		"metrics.information_ratio": "Information Ratio",

		"charts.cumulative_returns": "Cumulative Returns",
		"charts.drawdown":           "Drawdown",
		"charts.daily_returns":      "Daily Returns",
		"charts.weekly_returns":     "Weekly Returns",
		"charts.monthly_returns":    "Monthly Returns",
	},
}
