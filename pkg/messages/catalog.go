package messages

var defaultCatalog = Catalog{
	LocalePTBR: {
		KeyPageTitle:    "Cadastro de Clientes",
		KeyPageSubtitle: "Gerencie seus clientes de forma simples",

		KeyFormName:        "Nome",
		KeyFormEmail:       "Email",
		KeyFormPhone:       "Telefone",
		KeyFormNameHint:    "Digite o nome completo",
		KeyFormEmailHint:   "Digite o email",
		KeyFormPhoneHint:   "Digite o telefone",
		KeyFormCancel:      "Cancelar",
		KeySubmitCreate:    "Cadastrar Cliente",
		KeySubmitUpdate:    "Atualizar Cliente",
		KeyListTitle:       "Clientes Cadastrados",
		KeyListEmptyTitle:  "Nenhum cliente cadastrado",
		KeyListEmptyHint:   "Adicione seu primeiro cliente usando o formulário acima.",
		KeyListLoading:     "Carregando clientes...",
		KeyListLoadingVia:  "Conectando via proxy local: %s",
		KeyListErrorTitle:  "Erro ao carregar clientes:",
		KeyListRetry:       "Tentar Novamente",
		KeyDiagTitle:       "Diagnóstico:",
		KeyDiagConnection:  "Problema de conexão com o proxy local",
		KeyDiagServer:      "Verifique se o servidor está rodando corretamente",
		KeyDiagEnvironment: "Certifique-se de que as variáveis de ambiente estão configuradas",
		KeyDiagSettings:    "Configurações atuais:",
		KeyDiagProxyURL:    "URL do Proxy",
		KeyDiagBaseID:      "Base ID",
		KeyDiagTable:       "Tabela",

		KeyCardNoName:      "Sem nome",
		KeyCardNotInformed: "Não informado",
		KeyCardEdit:        "Editar",
		KeyCardDelete:      "Excluir",
		KeyDeleteConfirm:   "Tem certeza que deseja excluir este cliente?",

		KeyAlertValidation:   "Por favor, preencha todos os campos.",
		KeyAlertCreated:      "Cliente cadastrado com sucesso!",
		KeyAlertUpdated:      "Cliente atualizado com sucesso!",
		KeyAlertDeleted:      "Cliente excluído com sucesso!",
		KeyAlertSaveFailed:   "Erro ao salvar cliente. Tente novamente.",
		KeyAlertDeleteFailed: "Erro ao excluir cliente. Tente novamente.",
		KeyAlertConfigFailed: "Erro ao carregar configurações. Verifique se as variáveis de ambiente estão configuradas.",
		KeyAlertDismiss:      "Fechar",

		KeyStatusError:         "Status %d: %s",
		KeyStatusUnauthorized:  "Chave de API inválida ou expirada",
		KeyStatusForbidden:     "Acesso negado - verifique as permissões da API",
		KeyStatusNotFound:      "Base ou tabela não encontrada",
		KeyStatusUnprocessable: "Parâmetros da requisição inválidos",
		KeyStatusUnknown:       "Erro desconhecido",

		KeyMenuPrompt: "O que deseja fazer?",
		KeyMenuCreate: "Cadastrar cliente",
		KeyMenuEdit:   "Editar cliente",
		KeyMenuDelete: "Excluir cliente",
		KeyMenuReload: "Recarregar lista",
		KeyMenuQuit:   "Sair",
		KeyMenuPick:   "Selecione o cliente",
	},
	LocaleEN: {
		KeyPageTitle:    "Customer Registry",
		KeyPageSubtitle: "Manage your customers in one place",

		KeyFormName:        "Name",
		KeyFormEmail:       "Email",
		KeyFormPhone:       "Phone",
		KeyFormNameHint:    "Full name",
		KeyFormEmailHint:   "Email address",
		KeyFormPhoneHint:   "Phone number",
		KeyFormCancel:      "Cancel",
		KeySubmitCreate:    "Register",
		KeySubmitUpdate:    "Update",
		KeyListTitle:       "Customers",
		KeyListEmptyTitle:  "No customers yet",
		KeyListEmptyHint:   "Add your first customer using the form above.",
		KeyListLoading:     "Loading customers...",
		KeyListLoadingVia:  "Connecting through local proxy: %s",
		KeyListErrorTitle:  "Could not load customers:",
		KeyListRetry:       "Try again",
		KeyDiagTitle:       "Diagnostics:",
		KeyDiagConnection:  "Could not reach the local proxy",
		KeyDiagServer:      "Check that the server is running",
		KeyDiagEnvironment: "Make sure the environment variables are set",
		KeyDiagSettings:    "Current settings:",
		KeyDiagProxyURL:    "Proxy URL",
		KeyDiagBaseID:      "Base ID",
		KeyDiagTable:       "Table",

		KeyCardNoName:      "No name",
		KeyCardNotInformed: "Not informed",
		KeyCardEdit:        "Edit",
		KeyCardDelete:      "Delete",
		KeyDeleteConfirm:   "Delete this customer?",

		KeyAlertValidation:   "Please fill in all fields.",
		KeyAlertCreated:      "Customer registered!",
		KeyAlertUpdated:      "Customer updated!",
		KeyAlertDeleted:      "Customer deleted!",
		KeyAlertSaveFailed:   "Could not save customer. Try again.",
		KeyAlertDeleteFailed: "Could not delete customer. Try again.",
		KeyAlertConfigFailed: "Could not load configuration. Check the environment variables.",
		KeyAlertDismiss:      "Close",

		KeyStatusError:         "Status %d: %s",
		KeyStatusUnauthorized:  "Invalid or expired API key",
		KeyStatusForbidden:     "Access denied - check the API permissions",
		KeyStatusNotFound:      "Base or table not found",
		KeyStatusUnprocessable: "Invalid request parameters",
		KeyStatusUnknown:       "Unknown error",

		KeyMenuPrompt: "What do you want to do?",
		KeyMenuCreate: "Register customer",
		KeyMenuEdit:   "Edit customer",
		KeyMenuDelete: "Delete customer",
		KeyMenuReload: "Reload list",
		KeyMenuQuit:   "Quit",
		KeyMenuPick:   "Pick a customer",
	},
}
