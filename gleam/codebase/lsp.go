package codebase

import (
	"net/url"
	"path/filepath"
	"strings"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"
)

const lsName = "glas"

type LSPServer struct {
	codebase *Codebase
	handler  protocol.Handler
	server   *server.Server
	version  string
}

func NewLSPServer(version string) *LSPServer {
	ls := &LSPServer{
		version: version,
	}

	ls.handler = protocol.Handler{
		Initialize:                 ls.initialize,
		Initialized:                ls.initialized,
		Shutdown:                   ls.shutdown,
		SetTrace:                   ls.setTrace,
		TextDocumentDidOpen:        ls.textDocumentDidOpen,
		TextDocumentDidChange:      ls.textDocumentDidChange,
		TextDocumentDidClose:       ls.textDocumentDidClose,
		TextDocumentDidSave:        ls.textDocumentDidSave,
		TextDocumentDocumentSymbol: ls.textDocumentDocumentSymbol,
		TextDocumentHover:          ls.textDocumentHover,
	}

	ls.server = server.NewServer(&ls.handler, lsName, false)

	return ls
}

func (ls *LSPServer) RunStdio() error {
	return ls.server.RunStdio()
}

func (ls *LSPServer) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	rootDir := "."
	if params.RootPath != nil && *params.RootPath != "" {
		rootDir = *params.RootPath
	} else if params.RootURI != nil && *params.RootURI != "" {
		if path, err := uriToPath(*params.RootURI); err == nil {
			rootDir = path
		}
	}

	ls.codebase = New(rootDir)

	capabilities := ls.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
		Save: &protocol.SaveOptions{
			IncludeText: boolPtr(true),
		},
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &ls.version,
		},
	}, nil
}

func (ls *LSPServer) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	ls.codebase.ScanAll()
	return nil
}

func (ls *LSPServer) shutdown(ctx *glsp.Context) error {
	return nil
}

func (ls *LSPServer) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (ls *LSPServer) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	ls.codebase.UpdateFile(path, []byte(params.TextDocument.Text))
	ls.publishDiagnostics(ctx, params.TextDocument.URI, path)
	return nil
}

func (ls *LSPServer) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	if len(params.ContentChanges) > 0 {
		change := params.ContentChanges[len(params.ContentChanges)-1]
		if textChange, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
			ls.codebase.UpdateFile(path, []byte(textChange.Text))
			ls.publishDiagnostics(ctx, params.TextDocument.URI, path)
		}
	}
	return nil
}

func (ls *LSPServer) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	return nil
}

func (ls *LSPServer) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	if params.Text != nil {
		ls.codebase.UpdateFile(path, []byte(*params.Text))
	} else {
		ls.codebase.ScanFile(path)
	}
	ls.publishDiagnostics(ctx, params.TextDocument.URI, path)
	return nil
}

func (ls *LSPServer) publishDiagnostics(ctx *glsp.Context, uri string, path string) {
	diags := ls.codebase.Diagnostics(path)

	// An empty (non-nil) list clears stale diagnostics on the client.
	items := make([]protocol.Diagnostic, 0, len(diags))
	severity := protocol.DiagnosticSeverityError
	source := lsName
	for _, d := range diags {
		items = append(items, protocol.Diagnostic{
			Range:    toProtocolRange(d.Start, d.End),
			Severity: &severity,
			Source:   &source,
			Message:  d.Message,
		})
	}

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: items,
	})
}

func (ls *LSPServer) textDocumentDocumentSymbol(ctx *glsp.Context, params *protocol.DocumentSymbolParams) (any, error) {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil, nil
	}
	file := ls.codebase.GetFile(path)
	if file == nil {
		return nil, nil
	}

	var out []protocol.DocumentSymbol
	for _, sym := range ls.codebase.Symbols(path) {
		kind := toProtocolSymbolKind(sym.Kind)
		out = append(out, protocol.DocumentSymbol{
			Name: sym.Name,
			Kind: kind,
			Range: toProtocolRange(
				file.Lines.PositionFor(sym.Range.Start),
				file.Lines.PositionFor(sym.Range.End),
			),
			SelectionRange: toProtocolRange(
				file.Lines.PositionFor(sym.NameRange.Start),
				file.Lines.PositionFor(sym.NameRange.End),
			),
		})
	}
	return out, nil
}

func (ls *LSPServer) textDocumentHover(ctx *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil, nil
	}
	file := ls.codebase.GetFile(path)
	if file == nil {
		return nil, nil
	}

	offset := file.Lines.OffsetFor(Position{
		Line:   uint32(params.Position.Line),
		Column: uint32(params.Position.Character),
	})
	sym, ok := ls.codebase.SymbolAt(path, offset)
	if !ok || sym.Doc == "" {
		return nil, nil
	}

	value := "**" + sym.Name + "**\n\n" + sym.Doc
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindMarkdown,
			Value: value,
		},
	}, nil
}

func toProtocolRange(start, end Position) protocol.Range {
	return protocol.Range{
		Start: protocol.Position{
			Line:      protocol.UInteger(start.Line),
			Character: protocol.UInteger(start.Column),
		},
		End: protocol.Position{
			Line:      protocol.UInteger(end.Line),
			Character: protocol.UInteger(end.Column),
		},
	}
}

func toProtocolSymbolKind(kind SymbolKind) protocol.SymbolKind {
	switch kind {
	case SymbolFunction:
		return protocol.SymbolKindFunction
	case SymbolConstant:
		return protocol.SymbolKindConstant
	case SymbolType:
		return protocol.SymbolKindEnum
	case SymbolTypeAlias:
		return protocol.SymbolKindInterface
	default:
		return protocol.SymbolKindVariable
	}
}

func uriToPath(uri string) (string, error) {
	if strings.HasPrefix(uri, "file://") {
		parsed, err := url.Parse(uri)
		if err != nil {
			return "", err
		}
		return filepath.Clean(parsed.Path), nil
	}
	return uri, nil
}

func boolPtr(b bool) *bool {
	return &b
}

func syncKindPtr(kind protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &kind
}
