package utilcss_test

import (
	"fmt"
	"strings"

	"github.com/yacobolo/utilcss"
)

func ExampleGenerateClass() {
	css, err := utilcss.GenerateClass("text(md/1.5)")
	if err != nil {
		panic(err)
	}
	fmt.Println(css)
	// Output: .text\(md\/1\.5\){font-size:var(--font-md);line-height:1.5}
}

func ExampleNew() {
	extra, err := utilcss.LoadTokensTOML(strings.NewReader("[color]\nbrand = \"#7c3aed\"\n"))
	if err != nil {
		panic(err)
	}
	table := utilcss.DefaultTokens()
	table.Merge(extra)

	chip, err := utilcss.DefineComponent(utilcss.ComponentDefinition{Base: "p(lg) c(brand)"})
	if err != nil {
		panic(err)
	}
	registry := utilcss.NewRegistry()
	registry.Register("chip", chip)

	g := utilcss.New(utilcss.WithTokens(table), utilcss.WithRegistry(registry))

	c := utilcss.NewCollector()
	c.Start()
	res := g.Generate([]string{"chip", "lg:c(brand)"}, utilcss.WithCollector(c))
	c.Stop()

	fmt.Println(res.CSS)
	fmt.Println(utilcss.Minify(c.CSS()))
	// Output:
	// .chip{padding:var(--spacing-lg);color:var(--color-brand)}@media (min-width:1024px){.lg\:c\(brand\){color:var(--color-brand)}}
	// :root{--spacing-lg:24px;--color-brand:#7c3aed}
}

func ExampleTokenTable() {
	table := utilcss.NewTokenTable()
	table.Set(utilcss.CategorySpacing, "gutter", "18px")

	g := utilcss.New(utilcss.WithTokens(table))
	css, err := g.GenerateClass("p(gutter)")
	if err != nil {
		panic(err)
	}
	fmt.Println(css)
	fmt.Println(g.TokensCSS())
	// Output:
	// .p\(gutter\){padding:var(--spacing-gutter)}
	// :root{--spacing-gutter:18px}
}
