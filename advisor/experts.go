package advisor

import (
	"context"
	"fmt"

	"github.com/jpcaulfield/rentfolio"
	"github.com/jpcaulfield/rentfolio/date"
	"github.com/jpcaulfield/rentfolio/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// newFacilitator creates the expert in charge of the conversation.
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skills from the Tools and ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is a real-estate investor asking about the properties in his portfolio:
			their income, their financing, and whether they perform. Check the portfolio first
			to understand which properties he owns before answering.

			Devise a plan of questions to ask each expert and come up with the best response to the user's request.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewMarketWatcher creates the expert grounding answers in current market
// information through Google Search.
func NewMarketWatcher() *Expert {
	return &Expert{
		Name: "MarketWatcher",
		Description: `This is an expert on the real-estate market,
		aware of current mortgage rates, local market trends and regulation.
		Ask the MarketWatcher whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert in real-estate markets. You can search and find anything related to
			property prices, rents, mortgage rates and housing regulation. You leverage Google
			Search to ground your assertions, and you know how to relate the latest news to the
			user's request.
				`}}},
		},
	}
}

// NewAnalyst creates the expert in charge of reading the user's property
// ledger and computing the investment figures.
func NewAnalyst(ledgerPath string) *Expert {
	lib := []Function{
		listProperties(ledgerPath),
		propertyReport(ledgerPath),
	}

	return &Expert{
		Name: "Analyst",
		Description: `This is the Analyst. He reads the user's property ledger and computes
		the investment figures: NOI, cap rate, DSCR, cash flow, equity, IRR.
		Ask him anything about the properties the user actually owns.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are an analyst in charge of the user's rental-property ledger.
				You know how to use the Tools to extract the portfolio summary and the
				full report of any property. You are part of a team of experts; yours is
				everything about the user's own properties. Pardon their approximative
				language and figure out which property they meant.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// errResponse is the uniform error shape of a failed function call.
func errResponse(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"error": err.Error(),
		},
	}
}

func listProperties(ledgerPath string) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "list_properties",
			Description: `list_properties returns the portfolio summary: every property the user
			owns with its market value, NOI, cash flow, equity, cap rate and DSCR on the given day.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"date": {
						Type:        genai.TypeString,
						Description: "The evaluation date, format YYYY-MM-DD. Today is the default.",
					},
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown table of all properties with their key figures.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			on, err := parseDate(args)
			if err != nil {
				return errResponse(id, "list_properties", err)
			}
			pf, err := rentfolio.LoadPortfolio(ledgerPath)
			if err != nil {
				return errResponse(id, "list_properties", err)
			}
			return &genai.FunctionResponse{
				ID:   id,
				Name: "list_properties",
				Response: map[string]any{
					"output": renderer.SummaryMarkdown(rentfolio.NewPortfolioSummary(pf, on)),
				},
			}
		},
	}
}

func propertyReport(ledgerPath string) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "property_report",
			Description: `property_report returns the full investment report of one property:
			acquisition facts, trailing-twelve-month figures, ratios, IRR projections and the
			mortgage with its amortization schedule.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"property": {
						Type:        genai.TypeString,
						Description: "The property id, as listed by list_properties.",
					},
					"date": {
						Type:        genai.TypeString,
						Description: "The evaluation date, format YYYY-MM-DD. Today is the default.",
					},
				},
				Required: []string{"property"},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown report of the property.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			on, err := parseDate(args)
			if err != nil {
				return errResponse(id, "property_report", err)
			}
			propID, _ := args["property"].(string)
			pf, err := rentfolio.LoadPortfolio(ledgerPath)
			if err != nil {
				return errResponse(id, "property_report", err)
			}
			p := pf.Property(propID)
			if p == nil {
				return errResponse(id, "property_report", fmt.Errorf("unknown property %q", propID))
			}
			report := rentfolio.NewPropertyReport(p, on)
			return &genai.FunctionResponse{
				ID:   id,
				Name: "property_report",
				Response: map[string]any{
					"output": renderer.RenderPropertyReport(renderer.NewPropertyReportView(report)),
				},
			}
		},
	}
}

func parseDate(args map[string]any) (date.Date, error) {
	idate, hasDate := args["date"]
	if !hasDate {
		return date.Today(), nil
	}
	sdate, ok := idate.(string)
	if !ok {
		return date.Today(), fmt.Errorf("argument 'date' is not a string as expected but %T", idate)
	}
	if sdate == "" {
		return date.Today(), nil
	}
	return date.Parse(sdate)
}
