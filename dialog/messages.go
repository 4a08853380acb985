package dialog

// Client-facing copy, verbatim from the deployed attendant.
const (
	welcomeCaption = "🚀"

	msgPlanChosen = "✅ Escolha: *%s*\n💰 Valor: *%s*\n\nCopie o código Pix abaixo, pague e envie o comprovante:"

	msgHelp             = "💡 *Auto-Ajuda: %s*\n\n%s"
	msgHelpDefaultTitle = "Dica Rápida"

	msgLinkReveal = "📎 *Link para mais detalhes:*\n\n%s\n\n_Clique ou copie para abrir._"
	msgLinkError  = "❌ Erro ao abrir link. Tente copiar do histórico."

	msgTrial           = "📲 *BAIXAR APLICATIVO*\n\nBaixe e instale o app abaixo, depois me chame para liberar o teste!"
	msgTrialAssetError = "⚠️ Erro: APK não encontrado na pasta assets."

	msgResellerHeader = "📊 *TABELA DE REVENDA*\n\nCréditos | Unitário | Total\n---------|----------|------\n"
	msgResellerFooter = "\n*Desconto progressivo! Fale com suporte para comprar.*"
	msgResellerEmpty  = "📊 *TABELA REVENDA*\n\nFale com o suporte para ver planos especiais para revendedores."

	msgSupportAck = "👨‍💻 *Atendimento Humano Solicitado*\n\nNotifiquei nosso suporte e em breve alguém entrará em contato com você neste número.\n\nPor favor, digite abaixo qual é sua dúvida para adiantar o atendimento."

	msgSupportNotify = "🔔 *NOVO CHAMADO DE SUPORTE*\n\n👤 Cliente: +%s\n🔗 Link: %s\n\n_O cliente está aguardando._"

	msgPaused = "⚠️ *Atendimento Pausado*\n\nO bot foi pausado por 24 horas devido a mensagens não reconhecidas.\n\nPara reativar, envie a palavra *MENU*."
)

const (
	apkMimeType = "application/vnd.android.package-archive"
	apkFileName = "AppVendas.apk"
)
