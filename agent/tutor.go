package agent

import (
	"context"
	"fmt"

	"github.com/etnz/assetexpl"
	"github.com/etnz/assetexpl/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// NewTutor creates the facilitator of the tutoring session. It reads the
// catalog in lang and can ask questions to experts.
func NewTutor(c *assetexpl.Catalog, lang assetexpl.Language, experts ...*Expert) (*Expert, error) {
	labels, err := c.Labels(lang)
	if err != nil {
		return nil, err
	}
	lib := CatalogFunctions(c, lang)
	for _, e := range experts {
		lib = append(lib, e)
	}

	return &Expert{
		Name:        "Tutor",
		Description: "The tutor leads the conversation with the user.",
		ModelName:   model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are a tutor helping a beginner investor to understand the main indices tracked by ETFs.

			Answer in the language of the user. The catalog you can read is written in ` + labels.LanguageName + `.

			Use the Tools to read the indices of the catalog: their description, risk/return profile,
			geographic and sector composition, and how to use them in a portfolio. Ground every figure
			you give in the catalog, and say so when the catalog does not have the answer.

			Experts are also available in the Tools, they keep context of your previous questions.

			You explain and compare; you never give personal investment advice. ` + labels.Disclaimer + `
		`}}},
		},
		Library: NewLibrary(lib),
	}, nil
}

// NewAnalyst creates an expert that searches the web for recent information.
func NewAnalyst() *Expert {
	return &Expert{
		Name: "Analyst",
		Description: `The Analyst follows the markets and the ETF industry.
		Ask the Analyst whenever you need recent information that is not in the catalog:
		news, recent performance, fees or providers of ETFs tracking an index.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an analyst of the ETF market. You Leverage Google Search to ground your
			assertions and always give the date of the information you report.
			`}}},
		},
	}
}

// CatalogFunctions returns the functions reading the catalog in lang.
func CatalogFunctions(c *assetexpl.Catalog, lang assetexpl.Language) []Function {
	return []Function{
		listIndices(c, lang),
		getProfile(c, lang),
		getComposition(c, lang),
	}
}

var indexParameter = &genai.Schema{
	Type:        genai.TypeString,
	Description: "The key of the index, as returned by list_indices.",
}

func listIndices(c *assetexpl.Catalog, lang assetexpl.Language) *Func {
	const name = "list_indices"
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        name,
			Description: "list_indices lists every index of the catalog with its key, name, risk level and time horizon.",
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown table of the indices.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			labels, err := c.Labels(lang)
			if err != nil {
				return errorResponse(id, name, err)
			}
			profiles, err := c.Profiles(lang)
			if err != nil {
				return errorResponse(id, name, err)
			}
			return outputResponse(id, name, renderer.IndexListMarkdown(labels, profiles))
		},
	}
}

func getProfile(c *assetexpl.Catalog, lang assetexpl.Language) *Func {
	const name = "get_profile"
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: name,
			Description: `get_profile returns the full page of an index: its description, its risk/return profile,
			its geographic and sector composition and the strategy to use it in a portfolio.`,
			Parameters: &genai.Schema{
				Type:       genai.TypeObject,
				Properties: map[string]*genai.Schema{"index": indexParameter},
				Required:   []string{"index"},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "The markdown page of the index.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			v, err := resolve(c, lang, args)
			if err != nil {
				return errorResponse(id, name, err)
			}
			md, err := renderer.RenderView(v, renderer.ViewRenderOptions{SkipTitle: true, SkipFooter: true})
			if err != nil {
				return errorResponse(id, name, err)
			}
			return outputResponse(id, name, md)
		},
	}
}

func getComposition(c *assetexpl.Catalog, lang assetexpl.Language) *Func {
	const name = "get_composition"
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        name,
			Description: "get_composition returns the geographic or sector composition of an index, ranked from the largest category.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"index": indexParameter,
					"breakdown": {
						Type:        genai.TypeString,
						Description: "Which composition to return.",
						Enum:        []string{string(assetexpl.Geographic), string(assetexpl.Sectors)},
					},
				},
				Required: []string{"index", "breakdown"},
			},
			Response: &genai.Schema{
				Type:        genai.TypeArray,
				Description: "The categories with their percentage of the index.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			v, err := resolve(c, lang, args)
			if err != nil {
				return errorResponse(id, name, err)
			}
			sb, err := stringArg(args, "breakdown")
			if err != nil {
				return errorResponse(id, name, err)
			}
			b, err := assetexpl.ParseBreakdown(sb)
			if err != nil {
				return errorResponse(id, name, err)
			}
			s, err := v.Series(b, assetexpl.Ranked)
			if err != nil {
				return errorResponse(id, name, err)
			}
			// largest first
			output := make([]map[string]any, 0, len(s.Points))
			for i := len(s.Points) - 1; i >= 0; i-- {
				p := s.Points[i]
				output = append(output, map[string]any{"category": p.Category, "percent": p.Label})
			}
			return outputResponse(id, name, output)
		},
	}
}

// resolve returns the view of the "index" argument.
func resolve(c *assetexpl.Catalog, lang assetexpl.Language, args map[string]any) (assetexpl.View, error) {
	key, err := stringArg(args, "index")
	if err != nil {
		return assetexpl.View{}, err
	}
	v, err := c.Resolve(assetexpl.Selection{Language: lang, Index: key})
	if err != nil {
		return assetexpl.View{}, fmt.Errorf("%w, call list_indices for the valid keys", err)
	}
	return v, nil
}
