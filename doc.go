// Package utilcss generates CSS from utility-class shorthand.
//
// A class such as "hbox(pack+gap-lg)", "c(white.8)" or "lg:hover:bg(blue-500)"
// is parsed into an expression, resolved against the rule registry and the
// design token tables, and emitted as an escaped, deduplicated and
// deterministically ordered stylesheet.
//
// # Generation
//
// Generate CSS for the classes you use:
//
//	css := utilcss.Generate([]string{"hbox(pack+gap-lg)", "text(md/1.5)"})
//
// or let the generator pick classes out of markup:
//
//	css := utilcss.GenerateText(`<div class="vbox(gap-md) p(lg)">`)
//
// A single class renders to exactly one block:
//
//	css, err := utilcss.GenerateClass("text(md)")
//	// .text\(md\){font-size:var(--font-md)}
//
// # Components
//
// Components bundle other classes under a new rule name:
//
//	btn, err := utilcss.DefineComponent(utilcss.ComponentDefinition{
//		Base:     "hbox(pack) r(md)",
//		Variants: map[string]string{"primary": "bg(blue-500) c(white)"},
//		Sizes:    map[string]string{"sm": "p(xs/sm)"},
//		Defaults: utilcss.ComponentDefaults{Variant: "primary", Size: "sm"},
//	})
//	utilcss.RegisterComponents(map[string]*utilcss.Component{"btn": btn})
//
// # Token usage
//
// Wrap generation in a collection to emit only the tokens that were used:
//
//	utilcss.StartCollection()
//	css := utilcss.Generate(classes)
//	utilcss.StopCollection()
//	vars := utilcss.UsedTokensCSS()
//
// Programs that need isolated state create their own Generator with New and
// pass a Collector per call with WithCollector:
//
//	table := utilcss.DefaultTokens()
//	table.Set(utilcss.CategoryColor, "brand", "#7c3aed")
//	g := utilcss.New(utilcss.WithTokens(table), utilcss.WithRegistry(utilcss.NewRegistry()))
//
//	c := utilcss.NewCollector()
//	c.Start()
//	res := g.Generate(classes, utilcss.WithCollector(c))
//	c.Stop()
//	vars := c.CSS()
package utilcss
