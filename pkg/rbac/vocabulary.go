package rbac

// Point of sale.
const (
	PermPOSAccess     Permission = "pos.access"
	PermPOSDiscount   Permission = "pos.discount"
	PermPOSVoid       Permission = "pos.void"
	PermPOSRefund     Permission = "pos.refund"
	PermPOSCashDrawer Permission = "pos.cash_drawer"
	PermPOSShiftClose Permission = "pos.shift_close"
)

// Orders.
const (
	PermOrderView   Permission = "order.view"
	PermOrderCreate Permission = "order.create"
	PermOrderUpdate Permission = "order.update"
	PermOrderCancel Permission = "order.cancel"
)

// Products.
const (
	PermProductView   Permission = "product.view"
	PermProductCreate Permission = "product.create"
	PermProductUpdate Permission = "product.update"
	PermProductDelete Permission = "product.delete"
)

// Inventory.
const (
	PermInventoryView     Permission = "inventory.view"
	PermInventoryManage   Permission = "inventory.manage"
	PermInventoryAdjust   Permission = "inventory.adjust"
	PermInventoryReceive  Permission = "inventory.receive"
	PermInventoryTransfer Permission = "inventory.transfer"
)

// Customers.
const (
	PermCustomerView   Permission = "customer.view"
	PermCustomerCreate Permission = "customer.create"
	PermCustomerUpdate Permission = "customer.update"
	PermCustomerDelete Permission = "customer.delete"
)

// Kitchen and floor service.
const (
	PermKitchenView   Permission = "kitchen.view"
	PermKitchenUpdate Permission = "kitchen.update"
	PermTableView     Permission = "table.view"
	PermTableAssign   Permission = "table.assign"
)

// Dashboard and reports.
const (
	PermDashboardView   Permission = "dashboard.view"
	PermReportView      Permission = "report.view"
	PermReportExport    Permission = "report.export"
	PermReportFinancial Permission = "report.financial"
)

// Users and roles.
const (
	PermUserView   Permission = "user.view"
	PermUserCreate Permission = "user.create"
	PermUserUpdate Permission = "user.update"
	PermUserDelete Permission = "user.delete"
	PermRoleView   Permission = "role.view"
	PermRoleManage Permission = "role.manage"
	PermRoleAssign Permission = "role.assign"
)

// Settings and audit.
const (
	PermSettingsView     Permission = "settings.view"
	PermSettingsManage   Permission = "settings.manage"
	PermSettingsHardware Permission = "settings.hardware"
	PermAuditView        Permission = "audit.view"
)

// Roles.
const (
	RoleAdmin            Role = "admin"
	RoleManager          Role = "manager"
	RoleSupervisor       Role = "supervisor"
	RoleAccountant       Role = "accountant"
	RoleInventoryManager Role = "inventory_manager"
	RoleCashier          Role = "cashier"
	RoleKitchenStaff     Role = "kitchen_staff"
	RoleWaiter           Role = "waiter"
	RoleWaitress         Role = "waitress"
	RoleViewer           Role = "viewer"
)

// AllPermissions returns the builtin permission universe in declaration order.
// Adding a constant here is the only step needed to grant it to admin.
func AllPermissions() []Permission {
	return []Permission{
		PermPOSAccess, PermPOSDiscount, PermPOSVoid, PermPOSRefund, PermPOSCashDrawer, PermPOSShiftClose,
		PermOrderView, PermOrderCreate, PermOrderUpdate, PermOrderCancel,
		PermProductView, PermProductCreate, PermProductUpdate, PermProductDelete,
		PermInventoryView, PermInventoryManage, PermInventoryAdjust, PermInventoryReceive, PermInventoryTransfer,
		PermCustomerView, PermCustomerCreate, PermCustomerUpdate, PermCustomerDelete,
		PermKitchenView, PermKitchenUpdate, PermTableView, PermTableAssign,
		PermDashboardView, PermReportView, PermReportExport, PermReportFinancial,
		PermUserView, PermUserCreate, PermUserUpdate, PermUserDelete, PermRoleView, PermRoleManage, PermRoleAssign,
		PermSettingsView, PermSettingsManage, PermSettingsHardware, PermAuditView,
	}
}

// AllRoles returns the builtin roles in declaration order.
func AllRoles() []Role {
	return []Role{
		RoleAdmin,
		RoleManager,
		RoleSupervisor,
		RoleAccountant,
		RoleInventoryManager,
		RoleCashier,
		RoleKitchenStaff,
		RoleWaiter,
		RoleWaitress,
		RoleViewer,
	}
}
