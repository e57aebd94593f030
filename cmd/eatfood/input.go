package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"eatfood"

	"gopkg.in/yaml.v3"
)

// recipeFile is the --file format of the shopping command.
type recipeFile struct {
	Recipes []eatfood.Recipe `yaml:"recipes"`
}

// dayFile is the --file format of the analyze command.
type dayFile struct {
	Meals []eatfood.Meal `yaml:"meals"`
}

func readYAML(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

func isQuit(s string) bool {
	switch strings.ToLower(s) {
	case "完成", "done", "q", "quit":
		return true
	}
	return false
}

// parsePortionArg accepts "名称=克数".
func parsePortionArg(arg string) (eatfood.Portion, error) {
	name, grams, ok := strings.Cut(arg, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return eatfood.Portion{}, fmt.Errorf("invalid portion %q, want name=grams", arg)
	}
	g, err := strconv.ParseFloat(strings.TrimSpace(grams), 64)
	if err != nil || g < 0 {
		return eatfood.Portion{}, fmt.Errorf("invalid grams in %q", arg)
	}
	return eatfood.Portion{Name: name, Grams: g}, nil
}

// prompter reads answers line by line; EOF ends every loop.
type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewScanner(in), out: out}
}

func (p *prompter) ask(prompt string) (string, bool) {
	fmt.Fprint(p.out, prompt)
	if !p.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(p.in.Text()), true
}

// askRecipes collects recipes until a quit word or EOF. A recipe without
// ingredients is dropped.
func (p *prompter) askRecipes() []eatfood.Recipe {
	fmt.Fprintln(p.out, "🎮 交互式购物清单生成")
	fmt.Fprintln(p.out, "输入菜谱（每行一个食材，空行结束菜谱）")
	fmt.Fprintln(p.out, "格式示例: 鸡蛋 3个, 番茄 2个, 油 10克")

	var recipes []eatfood.Recipe
	for {
		name, ok := p.ask(fmt.Sprintf("\n请输入第%d个菜谱名称（输入'完成'结束）: ", len(recipes)+1))
		if !ok || isQuit(name) {
			break
		}

		fmt.Fprintf(p.out, "请输入 %s 的食材（每行一个，空行结束）:\n", name)
		var ingredients []string
		eof := false
		for {
			line, ok := p.ask("食材: ")
			if !ok {
				eof = true
				break
			}
			if line == "" {
				break
			}
			ingredients = append(ingredients, line)
		}

		if len(ingredients) > 0 {
			recipes = append(recipes, eatfood.Recipe{Name: name, Ingredients: ingredients})
		} else {
			fmt.Fprintln(p.out, "⚠️  没有输入食材，菜谱未添加")
		}
		if eof {
			break
		}
	}
	return recipes
}

// askPortion reads one food and its weight. It reports false when the user
// quits; an unknown food or bad number is reported and asked again.
func (p *prompter) askPortion(calc *eatfood.CalorieCalculator, known []string) (eatfood.Portion, bool) {
	for {
		food, ok := p.ask("\n请输入食物名称（中文）: ")
		if !ok || strings.ToLower(food) == "q" {
			return eatfood.Portion{}, false
		}
		if !calc.Known(food) {
			hint := known
			if len(hint) > 10 {
				hint = hint[:10]
			}
			fmt.Fprintf(p.out, "⚠️  未知食物，可用食物: %s...\n", strings.Join(hint, ", "))
			continue
		}

		answer, ok := p.ask(fmt.Sprintf("请输入%s的重量(克): ", food))
		if !ok {
			return eatfood.Portion{}, false
		}
		g, err := strconv.ParseFloat(answer, 64)
		if err != nil || g < 0 {
			fmt.Fprintln(p.out, "⚠️  请输入有效的数字")
			continue
		}
		return eatfood.Portion{Name: food, Grams: g}, true
	}
}
