package eatfood

import "strings"

const (
	KcalPerGramProtein = 4
	KcalPerGramFat     = 9
	KcalPerGramCarbs   = 4
)

// Nutrients is an amount of each tracked nutrient. In a Food it is per
// 100 g of edible portion.
type Nutrients struct {
	Calories float64 `yaml:"calories"`  // kcal
	Protein  float64 `yaml:"protein"`   // g
	Fat      float64 `yaml:"fat"`       // g
	Carbs    float64 `yaml:"carbs"`     // g
	Fiber    float64 `yaml:"fiber"`     // g
	Calcium  float64 `yaml:"calcium"`   // mg
	Iron     float64 `yaml:"iron"`      // mg
	VitaminC float64 `yaml:"vitamin_c"` // mg
}

// Scale returns the nutrients in grams of a food described per 100 g.
func (n Nutrients) Scale(grams float64) Nutrients {
	f := grams / 100
	return Nutrients{
		Calories: n.Calories * f,
		Protein:  n.Protein * f,
		Fat:      n.Fat * f,
		Carbs:    n.Carbs * f,
		Fiber:    n.Fiber * f,
		Calcium:  n.Calcium * f,
		Iron:     n.Iron * f,
		VitaminC: n.VitaminC * f,
	}
}

func (n Nutrients) Add(o Nutrients) Nutrients {
	return Nutrients{
		Calories: n.Calories + o.Calories,
		Protein:  n.Protein + o.Protein,
		Fat:      n.Fat + o.Fat,
		Carbs:    n.Carbs + o.Carbs,
		Fiber:    n.Fiber + o.Fiber,
		Calcium:  n.Calcium + o.Calcium,
		Iron:     n.Iron + o.Iron,
		VitaminC: n.VitaminC + o.VitaminC,
	}
}

func (n Nutrients) Round1() Nutrients {
	return Nutrients{
		Calories: Round1(n.Calories),
		Protein:  Round1(n.Protein),
		Fat:      Round1(n.Fat),
		Carbs:    Round1(n.Carbs),
		Fiber:    Round1(n.Fiber),
		Calcium:  Round1(n.Calcium),
		Iron:     Round1(n.Iron),
		VitaminC: Round1(n.VitaminC),
	}
}

type Food struct {
	Name      string `yaml:"name"`
	Nutrients `yaml:",inline"`
}

type FoodTable []Food

// Lookup matches the trimmed name exactly.
func (ft FoodTable) Lookup(name string) (Food, bool) {
	name = strings.TrimSpace(name)
	for _, f := range ft {
		if f.Name == name {
			return f, true
		}
	}
	return Food{}, false
}

func (ft FoodTable) Names() []string {
	names := make([]string, 0, len(ft))
	for _, f := range ft {
		names = append(names, f.Name)
	}
	return names
}

// DefaultFoodTable follows the China Food Composition Tables, per 100 g.
func DefaultFoodTable() FoodTable {
	return FoodTable{
		// grains and tubers
		{Name: "大米", Nutrients: Nutrients{Calories: 346, Protein: 7.4, Fat: 0.8, Carbs: 77.2}},
		{Name: "米饭", Nutrients: Nutrients{Calories: 116, Protein: 2.6, Fat: 0.3, Carbs: 25.6, Fiber: 0.3}},
		{Name: "面条", Nutrients: Nutrients{Calories: 284, Protein: 8.3, Fat: 0.7, Carbs: 61.9}},
		{Name: "馒头", Nutrients: Nutrients{Calories: 223, Protein: 7.0, Fat: 1.1, Carbs: 47.0}},
		{Name: "面包", Nutrients: Nutrients{Calories: 312, Protein: 8.3, Fat: 5.1, Carbs: 58.6}},

		// meat and eggs
		{Name: "鸡蛋", Nutrients: Nutrients{Calories: 144, Protein: 13.3, Fat: 8.8, Carbs: 2.8}},
		{Name: "鸡胸肉", Nutrients: Nutrients{Calories: 133, Protein: 19.4, Fat: 5.0, Carbs: 2.5}},
		{Name: "鸡腿", Nutrients: Nutrients{Calories: 181, Protein: 16.0, Fat: 13.0}},
		{Name: "猪肉", Nutrients: Nutrients{Calories: 395, Protein: 13.2, Fat: 37.0, Carbs: 2.4}},
		{Name: "牛肉", Nutrients: Nutrients{Calories: 125, Protein: 19.9, Fat: 4.2, Carbs: 2.0}},
		{Name: "鱼", Nutrients: Nutrients{Calories: 113, Protein: 20.0, Fat: 3.4}},

		// vegetables
		{Name: "番茄", Nutrients: Nutrients{Calories: 19, Protein: 0.9, Fat: 0.2, Carbs: 4.0, Fiber: 0.5}},
		{Name: "黄瓜", Nutrients: Nutrients{Calories: 15, Protein: 0.8, Fat: 0.2, Carbs: 2.9}},
		{Name: "白菜", Nutrients: Nutrients{Calories: 17, Protein: 1.5, Fat: 0.1, Carbs: 3.2}},
		{Name: "土豆", Nutrients: Nutrients{Calories: 77, Protein: 2.0, Fat: 0.2, Carbs: 17.2}},
		{Name: "胡萝卜", Nutrients: Nutrients{Calories: 37, Protein: 1.0, Fat: 0.2, Carbs: 8.8}},
		{Name: "菠菜", Nutrients: Nutrients{Calories: 28, Protein: 2.6, Fat: 0.3, Carbs: 4.5, Fiber: 1.7, Iron: 2.9, VitaminC: 32}},

		// soy
		{Name: "豆腐", Nutrients: Nutrients{Calories: 81, Protein: 8.1, Fat: 3.7, Carbs: 4.2}},
		{Name: "豆浆", Nutrients: Nutrients{Calories: 14, Protein: 1.8, Fat: 0.7, Carbs: 1.1}},

		// dairy
		{Name: "牛奶", Nutrients: Nutrients{Calories: 54, Protein: 3.0, Fat: 3.2, Carbs: 3.4, Calcium: 104}},

		// fruit
		{Name: "苹果", Nutrients: Nutrients{Calories: 52, Protein: 0.2, Fat: 0.2, Carbs: 13.5}},
		{Name: "香蕉", Nutrients: Nutrients{Calories: 89, Protein: 1.1, Fat: 0.3, Carbs: 22.0}},
		{Name: "橙子", Nutrients: Nutrients{Calories: 47, Protein: 0.8, Fat: 0.2, Carbs: 11.7}},

		// condiments
		{Name: "食用油", Nutrients: Nutrients{Calories: 899, Fat: 99.9}},
		{Name: "白糖", Nutrients: Nutrients{Calories: 400, Carbs: 99.9}},
		{Name: "盐", Nutrients: Nutrients{}},
	}
}

// DailyReference is the adult reference intake (light activity, male).
type DailyReference struct {
	Calories       float64 `yaml:"calories"`
	Protein        float64 `yaml:"protein"`
	FatMinEnergyPc float64 `yaml:"fat_min_energy_pct"`
	FatMaxEnergyPc float64 `yaml:"fat_max_energy_pct"`
	Carbs          float64 `yaml:"carbs"`
	Fiber          float64 `yaml:"fiber"`
	Calcium        float64 `yaml:"calcium"`
	Iron           float64 `yaml:"iron"`
	VitaminC       float64 `yaml:"vitamin_c"`
}

func DefaultDailyReference() DailyReference {
	return DailyReference{
		Calories:       2250,
		Protein:        65,
		FatMinEnergyPc: 20,
		FatMaxEnergyPc: 30,
		Carbs:          300,
		Fiber:          25,
		Calcium:        800,
		Iron:           12,
		VitaminC:       100,
	}
}

// FatRange converts the fat energy share into grams.
func (r DailyReference) FatRange() (lo, hi float64) {
	lo = r.Calories * r.FatMinEnergyPc / 100 / KcalPerGramFat
	hi = r.Calories * r.FatMaxEnergyPc / 100 / KcalPerGramFat
	return lo, hi
}

// EnergySplit is how much of the energy comes from each macronutrient.
type EnergySplit struct {
	ProteinKcal float64
	FatKcal     float64
	CarbsKcal   float64
	ProteinPct  float64
	FatPct      float64
	CarbsPct    float64
}

func SplitEnergy(n Nutrients) EnergySplit {
	s := EnergySplit{
		ProteinKcal: n.Protein * KcalPerGramProtein,
		FatKcal:     n.Fat * KcalPerGramFat,
		CarbsKcal:   n.Carbs * KcalPerGramCarbs,
	}
	s.ProteinPct = Percent(s.ProteinKcal, n.Calories)
	s.FatPct = Percent(s.FatKcal, n.Calories)
	s.CarbsPct = Percent(s.CarbsKcal, n.Calories)
	return s
}
