// Package objectmodel declares the Adaptive Card document types and their
// schemas: the host-side font tables (FontSizesConfig, FontWeightsConfig,
// FontTypeDefinition, HostConfig), media sources, the card element tree and
// its actions.
//
// Every type decodes with field-level default fallback through its schema:
//
//	def := objectmodel.DefaultFontTypeDefinition()
//	ft := objectmodel.FontTypeDefinitionSchema.Deserialize(node, def)
//
// Elements that reference remote assets implement ResourceProvider so a
// host can collect every URL of a card before rendering it:
//
//	card := objectmodel.CardSchema.Deserialize(node, objectmodel.DefaultAdaptiveCard())
//	for _, r := range objectmodel.UniqueResources(card.Resources()) {
//		prefetch(r.URL, r.MimeType)
//	}
package objectmodel
