package harness

import (
	"go/constant"
	"go/token"
	"reflect"

	"github.com/traefik/yaegi/interp"

	pandoc "github.com/growler/go-panflute"
)

// pandocPath is the import path scripts use for the document model.
const pandocPath = "github.com/growler/go-panflute"

// symbols exports the non-generic API of the document model to scripts.
var symbols = interp.Exports{
	pandocPath + "/pandoc": {
		// function, constant and variable definitions
		"ASTFormat":         reflect.ValueOf(constant.MakeFromLiteral("\"panflute\"", token.STRING, 0)),
		"AlignCenter":       reflect.ValueOf(pandoc.AlignCenter),
		"AlignDefault":      reflect.ValueOf(pandoc.AlignDefault),
		"AlignLeft":         reflect.ValueOf(pandoc.AlignLeft),
		"AlignRight":        reflect.ValueOf(pandoc.AlignRight),
		"Ancestor":          reflect.ValueOf(pandoc.Ancestor),
		"ApplyFilters":      reflect.ValueOf(pandoc.ApplyFilters),
		"AuthorInText":      reflect.ValueOf(pandoc.AuthorInText),
		"BlockQuoteTag":     reflect.ValueOf(pandoc.BlockQuoteTag),
		"BulletListTag":     reflect.ValueOf(pandoc.BulletListTag),
		"CaptionTag":        reflect.ValueOf(pandoc.CaptionTag),
		"CitationTag":       reflect.ValueOf(pandoc.CitationTag),
		"CiteTag":           reflect.ValueOf(pandoc.CiteTag),
		"CodeBlockTag":      reflect.ValueOf(pandoc.CodeBlockTag),
		"CodeTag":           reflect.ValueOf(pandoc.CodeTag),
		"Continue":          reflect.ValueOf(&pandoc.Continue).Elem(),
		"ConvertText":       reflect.ValueOf(pandoc.ConvertText),
		"Decimal":           reflect.ValueOf(pandoc.Decimal),
		"DefaultColSpec":    reflect.ValueOf(&pandoc.DefaultColSpec).Elem(),
		"DefaultColWidth":   reflect.ValueOf(pandoc.DefaultColWidth),
		"DefaultDelim":      reflect.ValueOf(pandoc.DefaultDelim),
		"DefaultFormat":     reflect.ValueOf(constant.MakeFromLiteral("\"html\"", token.STRING, 0)),
		"DefaultListAttrs":  reflect.ValueOf(&pandoc.DefaultListAttrs).Elem(),
		"DefaultStyle":      reflect.ValueOf(pandoc.DefaultStyle),
		"DefinitionItemTag": reflect.ValueOf(pandoc.DefinitionItemTag),
		"DefinitionListTag": reflect.ValueOf(pandoc.DefinitionListTag),
		"DefinitionTag":     reflect.ValueOf(pandoc.DefinitionTag),
		"Delete":            reflect.ValueOf(pandoc.Delete),
		"DisplayMath":       reflect.ValueOf(pandoc.DisplayMath),
		"DivTag":            reflect.ValueOf(pandoc.DivTag),
		"DocOf":             reflect.ValueOf(pandoc.DocOf),
		"DocTag":            reflect.ValueOf(pandoc.DocTag),
		"DoubleQuote":       reflect.ValueOf(pandoc.DoubleQuote),
		"EmphTag":           reflect.ValueOf(pandoc.EmphTag),
		"Equal":             reflect.ValueOf(pandoc.Equal),
		"ErrNoDocument":     reflect.ValueOf(&pandoc.ErrNoDocument).Elem(),
		"ErrOptionNotFound": reflect.ValueOf(&pandoc.ErrOptionNotFound).Elem(),
		"Example":           reflect.ValueOf(pandoc.Example),
		"FigureTag":         reflect.ValueOf(pandoc.FigureTag),
		"Finalize":          reflect.ValueOf(pandoc.Finalize),
		"Format":            reflect.ValueOf(pandoc.Format),
		"GetOption":         reflect.ValueOf(pandoc.GetOption),
		"HeaderTag":         reflect.ValueOf(pandoc.HeaderTag),
		"HorizontalRuleTag": reflect.ValueOf(pandoc.HorizontalRuleTag),
		"ImageTag":          reflect.ValueOf(pandoc.ImageTag),
		"InlineMath":        reflect.ValueOf(pandoc.InlineMath),
		"IsRawFormat":       reflect.ValueOf(pandoc.IsRawFormat),
		"Legacy":            reflect.ValueOf(pandoc.Legacy),
		"LineBlockTag":      reflect.ValueOf(pandoc.LineBlockTag),
		"LineBreakTag":      reflect.ValueOf(pandoc.LineBreakTag),
		"LineItemTag":       reflect.ValueOf(pandoc.LineItemTag),
		"LinkTag":           reflect.ValueOf(pandoc.LinkTag),
		"ListItemTag":       reflect.ValueOf(pandoc.ListItemTag),
		"LoadFile":          reflect.ValueOf(pandoc.LoadFile),
		"LoadFrom":          reflect.ValueOf(pandoc.LoadFrom),
		"LowerAlpha":        reflect.ValueOf(pandoc.LowerAlpha),
		"LowerRoman":        reflect.ValueOf(pandoc.LowerRoman),
		"Marshal":           reflect.ValueOf(pandoc.Marshal),
		"MarshalElement":    reflect.ValueOf(pandoc.MarshalElement),
		"MathTag":           reflect.ValueOf(pandoc.MathTag),
		"MetaBlocksTag":     reflect.ValueOf(pandoc.MetaBlocksTag),
		"MetaBoolTag":       reflect.ValueOf(pandoc.MetaBoolTag),
		"MetaInlinesTag":    reflect.ValueOf(pandoc.MetaInlinesTag),
		"MetaListTag":       reflect.ValueOf(pandoc.MetaListTag),
		"MetaMapTag":        reflect.ValueOf(pandoc.MetaMapTag),
		"MetaStringTag":     reflect.ValueOf(pandoc.MetaStringTag),
		"MetaToBuiltin":     reflect.ValueOf(pandoc.MetaToBuiltin),
		"Modern":            reflect.ValueOf(pandoc.Modern),
		"NewAttr":           reflect.ValueOf(pandoc.NewAttr),
		"NewBlockQuote":     reflect.ValueOf(pandoc.NewBlockQuote),
		"NewBulletList":     reflect.ValueOf(pandoc.NewBulletList),
		"NewCache":          reflect.ValueOf(pandoc.NewCache),
		"NewCaption":        reflect.ValueOf(pandoc.NewCaption),
		"NewCitation":       reflect.ValueOf(pandoc.NewCitation),
		"NewCite":           reflect.ValueOf(pandoc.NewCite),
		"NewCode":           reflect.ValueOf(pandoc.NewCode),
		"NewCodeBlock":      reflect.ValueOf(pandoc.NewCodeBlock),
		"NewDefinition":     reflect.ValueOf(pandoc.NewDefinition),
		"NewDefinitionItem": reflect.ValueOf(pandoc.NewDefinitionItem),
		"NewDefinitionList": reflect.ValueOf(pandoc.NewDefinitionList),
		"NewDiv":            reflect.ValueOf(pandoc.NewDiv),
		"NewDoc":            reflect.ValueOf(pandoc.NewDoc),
		"NewEmph":           reflect.ValueOf(pandoc.NewEmph),
		"NewFigure":         reflect.ValueOf(pandoc.NewFigure),
		"NewHeader":         reflect.ValueOf(pandoc.NewHeader),
		"NewHorizontalRule": reflect.ValueOf(pandoc.NewHorizontalRule),
		"NewImage":          reflect.ValueOf(pandoc.NewImage),
		"NewLineBlock":      reflect.ValueOf(pandoc.NewLineBlock),
		"NewLineBreak":      reflect.ValueOf(pandoc.NewLineBreak),
		"NewLineItem":       reflect.ValueOf(pandoc.NewLineItem),
		"NewLink":           reflect.ValueOf(pandoc.NewLink),
		"NewListItem":       reflect.ValueOf(pandoc.NewListItem),
		"NewMath":           reflect.ValueOf(pandoc.NewMath),
		"NewMetaBlocks":     reflect.ValueOf(pandoc.NewMetaBlocks),
		"NewMetaBool":       reflect.ValueOf(pandoc.NewMetaBool),
		"NewMetaInlines":    reflect.ValueOf(pandoc.NewMetaInlines),
		"NewMetaList":       reflect.ValueOf(pandoc.NewMetaList),
		"NewMetaMap":        reflect.ValueOf(pandoc.NewMetaMap),
		"NewMetaString":     reflect.ValueOf(pandoc.NewMetaString),
		"NewNote":           reflect.ValueOf(pandoc.NewNote),
		"NewOrderedList":    reflect.ValueOf(pandoc.NewOrderedList),
		"NewPara":           reflect.ValueOf(pandoc.NewPara),
		"NewPlain":          reflect.ValueOf(pandoc.NewPlain),
		"NewQuoted":         reflect.ValueOf(pandoc.NewQuoted),
		"NewRawBlock":       reflect.ValueOf(pandoc.NewRawBlock),
		"NewRawInline":      reflect.ValueOf(pandoc.NewRawInline),
		"NewSmallCaps":      reflect.ValueOf(pandoc.NewSmallCaps),
		"NewSoftBreak":      reflect.ValueOf(pandoc.NewSoftBreak),
		"NewSpace":          reflect.ValueOf(pandoc.NewSpace),
		"NewSpan":           reflect.ValueOf(pandoc.NewSpan),
		"NewSpanningCell":   reflect.ValueOf(pandoc.NewSpanningCell),
		"NewStr":            reflect.ValueOf(pandoc.NewStr),
		"NewStrikeout":      reflect.ValueOf(pandoc.NewStrikeout),
		"NewStrong":         reflect.ValueOf(pandoc.NewStrong),
		"NewSubscript":      reflect.ValueOf(pandoc.NewSubscript),
		"NewSuperscript":    reflect.ValueOf(pandoc.NewSuperscript),
		"NewTable":          reflect.ValueOf(pandoc.NewTable),
		"NewTableBody":      reflect.ValueOf(pandoc.NewTableBody),
		"NewTableCell":      reflect.ValueOf(pandoc.NewTableCell),
		"NewTableFoot":      reflect.ValueOf(pandoc.NewTableFoot),
		"NewTableHead":      reflect.ValueOf(pandoc.NewTableHead),
		"NewTableRow":       reflect.ValueOf(pandoc.NewTableRow),
		"NewUnderline":      reflect.ValueOf(pandoc.NewUnderline),
		"Next":              reflect.ValueOf(pandoc.Next),
		"NormalCitation":    reflect.ValueOf(pandoc.NormalCitation),
		"NoteTag":           reflect.ValueOf(pandoc.NoteTag),
		"Offset":            reflect.ValueOf(pandoc.Offset),
		"OneParen":          reflect.ValueOf(pandoc.OneParen),
		"OrderedListTag":    reflect.ValueOf(pandoc.OrderedListTag),
		"ParaTag":           reflect.ValueOf(pandoc.ParaTag),
		"Period":            reflect.ValueOf(pandoc.Period),
		"PlainTag":          reflect.ValueOf(pandoc.PlainTag),
		"Prepare":           reflect.ValueOf(pandoc.Prepare),
		"Prev":              reflect.ValueOf(pandoc.Prev),
		"QuotedTag":         reflect.ValueOf(pandoc.QuotedTag),
		"RawBlockTag":       reflect.ValueOf(pandoc.RawBlockTag),
		"RawInlineTag":      reflect.ValueOf(pandoc.RawInlineTag),
		"ReadFrom":          reflect.ValueOf(pandoc.ReadFrom),
		"Replace":           reflect.ValueOf(pandoc.Replace),
		"ReplaceKeyword":    reflect.ValueOf(pandoc.ReplaceKeyword),
		"RunFilter":         reflect.ValueOf(pandoc.RunFilter),
		"RunFilters":        reflect.ValueOf(pandoc.RunFilters),
		"Siblings":          reflect.ValueOf(pandoc.Siblings),
		"SingleQuote":       reflect.ValueOf(pandoc.SingleQuote),
		"SmallCapsTag":      reflect.ValueOf(pandoc.SmallCapsTag),
		"SoftBreakTag":      reflect.ValueOf(pandoc.SoftBreakTag),
		"SpaceTag":          reflect.ValueOf(pandoc.SpaceTag),
		"SpanTag":           reflect.ValueOf(pandoc.SpanTag),
		"StopIf":            reflect.ValueOf(pandoc.StopIf),
		"StrTag":            reflect.ValueOf(pandoc.StrTag),
		"StrikeoutTag":      reflect.ValueOf(pandoc.StrikeoutTag),
		"Stringify":         reflect.ValueOf(pandoc.Stringify),
		"StrongTag":         reflect.ValueOf(pandoc.StrongTag),
		"SubscriptTag":      reflect.ValueOf(pandoc.SubscriptTag),
		"SuperscriptTag":    reflect.ValueOf(pandoc.SuperscriptTag),
		"SuppressAuthor":    reflect.ValueOf(pandoc.SuppressAuthor),
		"TableBodyTag":      reflect.ValueOf(pandoc.TableBodyTag),
		"TableCellTag":      reflect.ValueOf(pandoc.TableCellTag),
		"TableFootTag":      reflect.ValueOf(pandoc.TableFootTag),
		"TableHeadTag":      reflect.ValueOf(pandoc.TableHeadTag),
		"TableRowTag":       reflect.ValueOf(pandoc.TableRowTag),
		"TableTag":          reflect.ValueOf(pandoc.TableTag),
		"ToMeta":            reflect.ValueOf(pandoc.ToMeta),
		"TwoParens":         reflect.ValueOf(pandoc.TwoParens),
		"UnderlineTag":      reflect.ValueOf(pandoc.UnderlineTag),
		"Unmarshal":         reflect.ValueOf(pandoc.Unmarshal),
		"UpperAlpha":        reflect.ValueOf(pandoc.UpperAlpha),
		"UpperRoman":        reflect.ValueOf(pandoc.UpperRoman),
		"Version":           reflect.ValueOf(constant.MakeFromLiteral("\"1.23.1\"", token.STRING, 0)),
		"Walk":              reflect.ValueOf(pandoc.Walk),
		"WithDoc":           reflect.ValueOf(pandoc.WithDoc),
		"WithFormat":        reflect.ValueOf(pandoc.WithFormat),
		"WithLogger":        reflect.ValueOf(pandoc.WithLogger),
		"WithStopIf":        reflect.ValueOf(pandoc.WithStopIf),
		"WithTrace":         reflect.ValueOf(pandoc.WithTrace),
		"Write":             reflect.ValueOf(pandoc.Write),
		"WriteElement":      reflect.ValueOf(pandoc.WriteElement),
		"WriteEra":          reflect.ValueOf(pandoc.WriteEra),

		// type definitions
		"Action":          reflect.ValueOf((*pandoc.Action)(nil)),
		"Alignment":       reflect.ValueOf((*pandoc.Alignment)(nil)),
		"Attr":            reflect.ValueOf((*pandoc.Attr)(nil)),
		"Attributed":      reflect.ValueOf((*pandoc.Attributed)(nil)),
		"Block":           reflect.ValueOf((*pandoc.Block)(nil)),
		"BlockContainer":  reflect.ValueOf((*pandoc.BlockContainer)(nil)),
		"BlockQuote":      reflect.ValueOf((*pandoc.BlockQuote)(nil)),
		"BulletList":      reflect.ValueOf((*pandoc.BulletList)(nil)),
		"Cache":           reflect.ValueOf((*pandoc.Cache)(nil)),
		"Caption":         reflect.ValueOf((*pandoc.Caption)(nil)),
		"Citation":        reflect.ValueOf((*pandoc.Citation)(nil)),
		"CitationMode":    reflect.ValueOf((*pandoc.CitationMode)(nil)),
		"Cite":            reflect.ValueOf((*pandoc.Cite)(nil)),
		"Code":            reflect.ValueOf((*pandoc.Code)(nil)),
		"CodeBlock":       reflect.ValueOf((*pandoc.CodeBlock)(nil)),
		"ColSpec":         reflect.ValueOf((*pandoc.ColSpec)(nil)),
		"ColWidth":        reflect.ValueOf((*pandoc.ColWidth)(nil)),
		"Conf":            reflect.ValueOf((*pandoc.Conf)(nil)),
		"Converter":       reflect.ValueOf((*pandoc.Converter)(nil)),
		"DecodeError":     reflect.ValueOf((*pandoc.DecodeError)(nil)),
		"Definition":      reflect.ValueOf((*pandoc.Definition)(nil)),
		"DefinitionItem":  reflect.ValueOf((*pandoc.DefinitionItem)(nil)),
		"DefinitionList":  reflect.ValueOf((*pandoc.DefinitionList)(nil)),
		"Div":             reflect.ValueOf((*pandoc.Div)(nil)),
		"Doc":             reflect.ValueOf((*pandoc.Doc)(nil)),
		"Element":         reflect.ValueOf((*pandoc.Element)(nil)),
		"Emph":            reflect.ValueOf((*pandoc.Emph)(nil)),
		"Era":             reflect.ValueOf((*pandoc.Era)(nil)),
		"Figure":          reflect.ValueOf((*pandoc.Figure)(nil)),
		"Header":          reflect.ValueOf((*pandoc.Header)(nil)),
		"Hook":            reflect.ValueOf((*pandoc.Hook)(nil)),
		"HorizontalRule":  reflect.ValueOf((*pandoc.HorizontalRule)(nil)),
		"Image":           reflect.ValueOf((*pandoc.Image)(nil)),
		"Inline":          reflect.ValueOf((*pandoc.Inline)(nil)),
		"InlineContainer": reflect.ValueOf((*pandoc.InlineContainer)(nil)),
		"KV":              reflect.ValueOf((*pandoc.KV)(nil)),
		"LineBlock":       reflect.ValueOf((*pandoc.LineBlock)(nil)),
		"LineBreak":       reflect.ValueOf((*pandoc.LineBreak)(nil)),
		"LineItem":        reflect.ValueOf((*pandoc.LineItem)(nil)),
		"Link":            reflect.ValueOf((*pandoc.Link)(nil)),
		"Linkable":        reflect.ValueOf((*pandoc.Linkable)(nil)),
		"ListAttrs":       reflect.ValueOf((*pandoc.ListAttrs)(nil)),
		"ListItem":        reflect.ValueOf((*pandoc.ListItem)(nil)),
		"ListNumberDelim": reflect.ValueOf((*pandoc.ListNumberDelim)(nil)),
		"ListNumberStyle": reflect.ValueOf((*pandoc.ListNumberStyle)(nil)),
		"Math":            reflect.ValueOf((*pandoc.Math)(nil)),
		"MathType":        reflect.ValueOf((*pandoc.MathType)(nil)),
		"MetaBlocks":      reflect.ValueOf((*pandoc.MetaBlocks)(nil)),
		"MetaBool":        reflect.ValueOf((*pandoc.MetaBool)(nil)),
		"MetaInlines":     reflect.ValueOf((*pandoc.MetaInlines)(nil)),
		"MetaList":        reflect.ValueOf((*pandoc.MetaList)(nil)),
		"MetaMap":         reflect.ValueOf((*pandoc.MetaMap)(nil)),
		"MetaString":      reflect.ValueOf((*pandoc.MetaString)(nil)),
		"MetaValue":       reflect.ValueOf((*pandoc.MetaValue)(nil)),
		"Note":            reflect.ValueOf((*pandoc.Note)(nil)),
		"OrderedList":     reflect.ValueOf((*pandoc.OrderedList)(nil)),
		"Para":            reflect.ValueOf((*pandoc.Para)(nil)),
		"Plain":           reflect.ValueOf((*pandoc.Plain)(nil)),
		"ProcessError":    reflect.ValueOf((*pandoc.ProcessError)(nil)),
		"QuoteType":       reflect.ValueOf((*pandoc.QuoteType)(nil)),
		"Quoted":          reflect.ValueOf((*pandoc.Quoted)(nil)),
		"RawBlock":        reflect.ValueOf((*pandoc.RawBlock)(nil)),
		"RawInline":       reflect.ValueOf((*pandoc.RawInline)(nil)),
		"RunOption":       reflect.ValueOf((*pandoc.RunOption)(nil)),
		"SmallCaps":       reflect.ValueOf((*pandoc.SmallCaps)(nil)),
		"SoftBreak":       reflect.ValueOf((*pandoc.SoftBreak)(nil)),
		"Space":           reflect.ValueOf((*pandoc.Space)(nil)),
		"Span":            reflect.ValueOf((*pandoc.Span)(nil)),
		"Str":             reflect.ValueOf((*pandoc.Str)(nil)),
		"Strikeout":       reflect.ValueOf((*pandoc.Strikeout)(nil)),
		"Strong":          reflect.ValueOf((*pandoc.Strong)(nil)),
		"StructureError":  reflect.ValueOf((*pandoc.StructureError)(nil)),
		"Subscript":       reflect.ValueOf((*pandoc.Subscript)(nil)),
		"Superscript":     reflect.ValueOf((*pandoc.Superscript)(nil)),
		"Table":           reflect.ValueOf((*pandoc.Table)(nil)),
		"TableBody":       reflect.ValueOf((*pandoc.TableBody)(nil)),
		"TableCell":       reflect.ValueOf((*pandoc.TableCell)(nil)),
		"TableFoot":       reflect.ValueOf((*pandoc.TableFoot)(nil)),
		"TableHead":       reflect.ValueOf((*pandoc.TableHead)(nil)),
		"TableRow":        reflect.ValueOf((*pandoc.TableRow)(nil)),
		"Tag":             reflect.ValueOf((*pandoc.Tag)(nil)),
		"Target":          reflect.ValueOf((*pandoc.Target)(nil)),
		"TypeError":       reflect.ValueOf((*pandoc.TypeError)(nil)),
		"Underline":       reflect.ValueOf((*pandoc.Underline)(nil)),
		"ValueError":      reflect.ValueOf((*pandoc.ValueError)(nil)),
		"WalkOption":      reflect.ValueOf((*pandoc.WalkOption)(nil)),
		"WhiteSpace":      reflect.ValueOf((*pandoc.WhiteSpace)(nil)),
	},
}
