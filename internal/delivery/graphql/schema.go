// Package graphql exposes the poll over GraphQL. It calls the same PollService as the REST API.
package graphql

import (
	"net/http"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/handler"

	"partyinvite/internal/domain"
)

var optionTallyType = graphql.NewObject(
	graphql.ObjectConfig{
		Name: "OptionTally",
		Fields: graphql.Fields{
			"id":        &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"name":      &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"emoji":     &graphql.Field{Type: graphql.String},
			"voteCount": &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"voters":    &graphql.Field{Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(graphql.String)))},
			"pct":       &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
		},
	},
)

var pollOptionType = graphql.NewObject(
	graphql.ObjectConfig{
		Name: "PollOption",
		Fields: graphql.Fields{
			"id":    &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"name":  &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"emoji": &graphql.Field{Type: graphql.String},
		},
	},
)

// NewSchema builds the schema: query poll, mutations toggleVote and addOption.
func NewSchema(svc domain.PollService) (graphql.Schema, error) {
	query := graphql.NewObject(
		graphql.ObjectConfig{
			Name: "Query",
			Fields: graphql.Fields{
				"poll": &graphql.Field{
					Type:        graphql.NewList(optionTallyType),
					Description: "Options with vote counts, most votes first.",
					Resolve: func(p graphql.ResolveParams) (any, error) {
						tally, err := svc.GetTally(p.Context)
						if err != nil {
							return nil, err
						}
						out := make([]map[string]any, 0, len(tally))
						for _, t := range tally {
							out = append(out, map[string]any{
								"id":        t.ID,
								"name":      t.Name,
								"emoji":     t.Emoji,
								"voteCount": t.VoteCount,
								"voters":    t.Voters,
								"pct":       t.Pct,
							})
						}
						return out, nil
					},
				},
			},
		},
	)

	mutation := graphql.NewObject(
		graphql.ObjectConfig{
			Name: "Mutation",
			Fields: graphql.Fields{
				"toggleVote": &graphql.Field{
					Type:        graphql.String,
					Description: `Casts or withdraws a vote. Returns "added" or "removed".`,
					Args: graphql.FieldConfigArgument{
						"guestId":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
						"optionId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
					},
					Resolve: func(p graphql.ResolveParams) (any, error) {
						guestID, _ := p.Args["guestId"].(int)
						optionID, _ := p.Args["optionId"].(int)
						action, err := svc.ToggleVote(p.Context, int64(guestID), int64(optionID))
						if err != nil {
							return nil, err
						}
						return string(action), nil
					},
				},
				"addOption": &graphql.Field{
					Type: pollOptionType,
					Args: graphql.FieldConfigArgument{
						"name":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
						"emoji":   &graphql.ArgumentConfig{Type: graphql.String},
						"guestId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
					},
					Resolve: func(p graphql.ResolveParams) (any, error) {
						name, _ := p.Args["name"].(string)
						emoji, _ := p.Args["emoji"].(string)
						guestID, _ := p.Args["guestId"].(int)
						opt, err := svc.AddOption(p.Context, name, emoji, int64(guestID))
						if err != nil {
							return nil, err
						}
						return map[string]any{"id": opt.ID, "name": opt.Name, "emoji": opt.Emoji}, nil
					},
				},
			},
		},
	)

	return graphql.NewSchema(
		graphql.SchemaConfig{
			Query:    query,
			Mutation: mutation,
		},
	)
}

// NewHandler serves schema over HTTP (GET and POST), with GraphiQL for browsers.
func NewHandler(schema *graphql.Schema) http.Handler {
	return handler.New(&handler.Config{
		Schema:   schema,
		Pretty:   true,
		GraphiQL: true,
	})
}
