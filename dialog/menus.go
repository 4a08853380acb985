package dialog

import "zapdesk/transport"

// Menu action button ids. These are the only ids the engine routes besides
// plan ids (from the catalog) and link tokens.
const (
	ButtonRenew    = "btn_renovar"
	ButtonTrial    = "btn_testar"
	ButtonReseller = "btn_revenda"
	ButtonSupport  = "btn_suporte"
	ButtonBack     = "btn_voltar"
)

const (
	menuTitle = "🤖 *Atendimento Automático*"

	menuPlansTitle  = "💎 *ESCOLHA SEU PLANO*"
	menuPlansText   = "Selecione a melhor opção para você:"
	menuPlansFooter = "Liberação Imediata"

	labelBack = "🔙 Voltar"
)

// MainMenu is the four-option entry menu. Button order is part of the
// contract with the rendering side.
func MainMenu() transport.MenuSpec {
	return transport.MenuSpec{
		Title:  menuTitle,
		Text:   "Olá! Seja bem-vindo.\nComo posso te ajudar hoje?",
		Footer: "Selecione uma opção 👇",
		Buttons: []transport.Button{
			{ID: ButtonRenew, Text: "💲 Renovar Acesso"},
			{ID: ButtonTrial, Text: "📲 Quero Testar"},
			{ID: ButtonReseller, Text: "💼 Revendas"},
			{ID: ButtonSupport, Text: "🆘 Falar com Suporte"},
		},
	}
}

// SupportOnlyMenu is shown after the first unrecognized message.
func SupportOnlyMenu() transport.MenuSpec {
	return transport.MenuSpec{
		Title:  menuTitle,
		Text:   "Desculpe, sou um robô e não compreendi sua mensagem.\n\nVocê deseja falar com um atendente humano?",
		Footer: "Selecione uma opção:",
		Buttons: []transport.Button{
			{ID: ButtonSupport, Text: "🆘 Sim, Suporte"},
		},
	}
}

func linkMenu(tokenID string) transport.MenuSpec {
	return transport.MenuSpec{
		Text: "Toque abaixo para abrir o link:",
		Buttons: []transport.Button{
			{ID: tokenID, Text: "🔗 Abrir Link"},
		},
	}
}
