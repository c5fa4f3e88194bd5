package engine

import (
	"github.com/catalogo-app/recommendation-backend/domain"
)

// MetricWeights 绩效分的四项指标权重。
type MetricWeights struct {
	ClickThroughRate float64
	SaveRate         float64
	PageViews        float64
	EngagementScore  float64
}

// Config 引擎的全部权重与阈值。构造后不再修改，测试可注入替代权重集。
type Config struct {
	DecayWindowDays float64

	// 行为事件权重，未知 action 记 0 分，向前兼容新枚举值
	ActionWeights map[domain.EngagementAction]float64

	// 显式信号基础权重
	RatingWeight        float64
	FavoriteWeight      float64
	SavedWeight         float64
	HighRatingThreshold float64

	Metrics MetricWeights

	// 行为推导偏好相对显式信号的折扣
	EngagementDiscount float64
	// 排序时的全局参与度加成
	EngagementBonus float64

	SimilarityDivisor float64
	TypeBonus         float64
	ContributorWeight float64

	ColdStartThreshold    int
	ColdStartPoolFactor   int
	ColdStartRatingWeight float64
	ColdStartMatchWeight  float64

	// 写入时的元数据加分
	ViewDurationBonus float64
	LongViewSeconds   float64
	ListTypeBonus     float64

	// 自定义推荐
	ReferenceWeight   float64
	FilterTypeBonus   float64
	FilterGenreBonus  float64
	FilterYearBonus   float64
	FilterRatingBonus float64

	SuccessThreshold float64
}

// DefaultConfig 与线上一致的固定权重。
func DefaultConfig() Config {
	return Config{
		DecayWindowDays: 90,
		ActionWeights: map[domain.EngagementAction]float64{
			domain.ActionPageView:    0.4,
			domain.ActionSaved:       0.3,
			domain.ActionFavorited:   0.2,
			domain.ActionAddedToList: 0.1,
		},
		RatingWeight:        0.5,
		FavoriteWeight:      0.3,
		SavedWeight:         0.2,
		HighRatingThreshold: 4.5,
		Metrics: MetricWeights{
			ClickThroughRate: 0.2,
			SaveRate:         0.1,
			PageViews:        0.15,
			EngagementScore:  0.6,
		},
		EngagementDiscount:    0.5,
		EngagementBonus:       0.3,
		SimilarityDivisor:     1.5,
		TypeBonus:             0.1,
		ContributorWeight:     0.05,
		ColdStartThreshold:    5,
		ColdStartPoolFactor:   3,
		ColdStartRatingWeight: 0.1,
		ColdStartMatchWeight:  0.3,
		ViewDurationBonus:     0.1,
		LongViewSeconds:       60,
		ListTypeBonus:         0.05,
		ReferenceWeight:       0.5,
		FilterTypeBonus:       0.5,
		FilterGenreBonus:      0.5,
		FilterYearBonus:       0.3,
		FilterRatingBonus:     0.2,
		SuccessThreshold:      0.3,
	}
}

// Engine 纯函数打分器，不持有时钟、不做 I/O。
type Engine struct {
	cfg Config
}

func New(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

func (e *Engine) Config() Config {
	return e.cfg
}
