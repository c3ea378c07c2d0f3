package rbac

import "context"

type builtinSource struct{}

// BuiltinSource returns the compiled-in point-of-sale vocabulary and catalog.
func BuiltinSource() CatalogSource {
	return builtinSource{}
}

// Load returns fresh copies on every call so callers cannot alter the builtin data.
func (builtinSource) Load(_ context.Context) (CatalogData, error) {
	return CatalogData{
		Permissions: AllPermissions(),
		Roles:       builtinRoles(),
		Templates:   builtinTemplates(),
		Categories:  builtinCategories(),
	}, nil
}

func builtinRoles() []RoleDefinition {
	return []RoleDefinition{
		{
			Role:        RoleAdmin,
			Name:        "Administrator",
			Description: "Full access to every store function and setting.",
			Hierarchy:   100,
			// Permissions are computed from the universe by the catalog.
		},
		{
			Role:        RoleManager,
			Name:        "Manager",
			Description: "Runs the store: sales, stock, staff and reports.",
			Hierarchy:   80,
			Permissions: []Permission{
				PermPOSAccess, PermPOSDiscount, PermPOSVoid, PermPOSRefund, PermPOSCashDrawer, PermPOSShiftClose,
				PermOrderView, PermOrderCreate, PermOrderUpdate, PermOrderCancel,
				PermProductView, PermProductCreate, PermProductUpdate, PermProductDelete,
				PermInventoryView, PermInventoryManage, PermInventoryAdjust, PermInventoryReceive, PermInventoryTransfer,
				PermCustomerView, PermCustomerCreate, PermCustomerUpdate, PermCustomerDelete,
				PermKitchenView, PermKitchenUpdate, PermTableView, PermTableAssign,
				PermDashboardView, PermReportView, PermReportExport, PermReportFinancial,
				PermUserView, PermUserCreate, PermUserUpdate, PermRoleView, PermRoleAssign,
				PermSettingsView, PermAuditView,
			},
		},
		{
			Role:        RoleSupervisor,
			Name:        "Supervisor",
			Description: "Oversees a shift: approves voids, refunds and discounts.",
			Hierarchy:   60,
			Permissions: []Permission{
				PermPOSAccess, PermPOSDiscount, PermPOSVoid, PermPOSRefund, PermPOSCashDrawer, PermPOSShiftClose,
				PermOrderView, PermOrderCreate, PermOrderUpdate, PermOrderCancel,
				PermProductView, PermInventoryView,
				PermCustomerView, PermCustomerCreate, PermCustomerUpdate,
				PermKitchenView, PermTableView, PermTableAssign,
				PermDashboardView, PermReportView,
				PermUserView,
			},
		},
		{
			Role:        RoleAccountant,
			Name:        "Accountant",
			Description: "Reads sales and stock data and exports financial reports.",
			Hierarchy:   50,
			Permissions: []Permission{
				PermOrderView, PermProductView, PermInventoryView, PermCustomerView,
				PermDashboardView, PermReportView, PermReportExport, PermReportFinancial,
				PermAuditView,
			},
		},
		{
			Role:        RoleInventoryManager,
			Name:        "Inventory Manager",
			Description: "Maintains the product list and stock levels.",
			Hierarchy:   50,
			Permissions: []Permission{
				PermProductView, PermProductCreate, PermProductUpdate, PermProductDelete,
				PermInventoryView, PermInventoryManage, PermInventoryAdjust, PermInventoryReceive, PermInventoryTransfer,
				PermDashboardView, PermReportView,
			},
		},
		{
			Role:        RoleCashier,
			Name:        "Cashier",
			Description: "Rings up sales at the register.",
			Hierarchy:   40,
			Permissions: []Permission{
				PermPOSAccess, PermProductView, PermCustomerView, PermCustomerCreate,
			},
		},
		{
			Role:        RoleKitchenStaff,
			Name:        "Kitchen Staff",
			Description: "Prepares orders and updates ticket status.",
			Hierarchy:   30,
			Permissions: []Permission{
				PermKitchenView, PermKitchenUpdate, PermOrderView, PermProductView, PermInventoryView,
			},
		},
		{
			Role:        RoleWaiter,
			Name:        "Waiter",
			Description: "Takes table orders on the floor.",
			Hierarchy:   20,
			Permissions: floorServicePermissions(),
		},
		{
			Role:        RoleWaitress,
			Name:        "Waitress",
			Description: "Takes table orders on the floor.",
			Hierarchy:   20,
			Permissions: floorServicePermissions(),
		},
		{
			Role:        RoleViewer,
			Name:        "Viewer",
			Description: "Read-only access to the dashboard and product list.",
			Hierarchy:   10,
			Permissions: []Permission{PermDashboardView, PermProductView},
		},
	}
}

func floorServicePermissions() []Permission {
	return []Permission{
		PermOrderView, PermOrderCreate, PermOrderUpdate,
		PermTableView, PermProductView, PermCustomerView,
	}
}

func builtinTemplates() []RoleTemplate {
	return []RoleTemplate{
		{
			ID:          "store_manager",
			Name:        "Store Manager",
			Description: "Day-to-day store management without system settings.",
			Icon:        "briefcase",
			Category:    "management",
			Hierarchy:   80,
			Permissions: []Permission{
				PermPOSAccess, PermPOSDiscount, PermPOSVoid, PermPOSRefund, PermPOSCashDrawer, PermPOSShiftClose,
				PermOrderView, PermOrderCreate, PermOrderUpdate, PermOrderCancel,
				PermProductView, PermProductCreate, PermProductUpdate,
				PermInventoryView, PermInventoryManage, PermInventoryReceive,
				PermCustomerView, PermCustomerCreate, PermCustomerUpdate,
				PermDashboardView, PermReportView, PermReportExport,
				PermUserView, PermRoleView,
			},
		},
		{
			ID:          "shift_supervisor",
			Name:        "Shift Supervisor",
			Description: "Approves voids and refunds during a shift.",
			Icon:        "user-check",
			Category:    "management",
			Hierarchy:   60,
			Permissions: []Permission{
				PermPOSAccess, PermPOSDiscount, PermPOSVoid, PermPOSRefund, PermPOSShiftClose,
				PermOrderView, PermOrderUpdate, PermOrderCancel,
				PermProductView, PermCustomerView, PermDashboardView,
			},
		},
		{
			ID:          "front_cashier",
			Name:        "Front Cashier",
			Description: "Register access with customer lookup and small discounts.",
			Icon:        "cash-register",
			Category:    "sales",
			Hierarchy:   40,
			Permissions: []Permission{
				PermPOSAccess, PermPOSDiscount, PermProductView, PermCustomerView, PermCustomerCreate,
			},
		},
		{
			ID:          "head_cashier",
			Name:        "Head Cashier",
			Description: "Register lead who balances drawers and issues refunds.",
			Icon:        "wallet",
			Category:    "sales",
			Hierarchy:   45,
			Permissions: []Permission{
				PermPOSAccess, PermPOSDiscount, PermPOSRefund, PermPOSCashDrawer, PermPOSShiftClose,
				PermOrderView, PermProductView,
				PermCustomerView, PermCustomerCreate, PermCustomerUpdate,
			},
		},
		{
			ID:          "stock_clerk",
			Name:        "Stock Clerk",
			Description: "Receives deliveries and checks stock.",
			Icon:        "package",
			Category:    "inventory",
			Hierarchy:   35,
			Permissions: []Permission{PermInventoryView, PermInventoryReceive, PermProductView},
		},
		{
			ID:          "inventory_lead",
			Name:        "Inventory Lead",
			Description: "Owns stock accuracy across locations.",
			Icon:        "boxes",
			Category:    "inventory",
			Hierarchy:   50,
			Permissions: []Permission{
				PermProductView, PermProductCreate, PermProductUpdate,
				PermInventoryView, PermInventoryManage, PermInventoryAdjust, PermInventoryReceive, PermInventoryTransfer,
				PermReportView,
			},
		},
		{
			ID:          "line_cook",
			Name:        "Line Cook",
			Description: "Kitchen display access for preparing tickets.",
			Icon:        "chef-hat",
			Category:    "kitchen",
			Hierarchy:   30,
			Permissions: []Permission{PermKitchenView, PermKitchenUpdate, PermOrderView},
		},
		{
			ID:          "floor_server",
			Name:        "Floor Server",
			Description: "Takes and updates table orders.",
			Icon:        "utensils",
			Category:    "service",
			Hierarchy:   20,
			Permissions: floorServicePermissions(),
		},
		{
			ID:          "bookkeeper",
			Name:        "Bookkeeper",
			Description: "Financial reporting and exports.",
			Icon:        "calculator",
			Category:    "finance",
			Hierarchy:   50,
			Permissions: []Permission{
				PermDashboardView, PermReportView, PermReportExport, PermReportFinancial, PermOrderView, PermAuditView,
			},
		},
		{
			ID:          "auditor",
			Name:        "Auditor",
			Description: "Read-only access to reports and the audit trail.",
			Icon:        "search",
			Category:    "finance",
			Hierarchy:   15,
			Permissions: []Permission{PermDashboardView, PermReportView, PermAuditView},
		},
	}
}

func builtinCategories() []PermissionCategory {
	return []PermissionCategory{
		{
			ID:          "pos",
			Name:        "Point of Sale",
			Description: "Register access, discounts, voids, refunds and the cash drawer.",
			Icon:        "cash-register",
			Permissions: []Permission{PermPOSAccess, PermPOSDiscount, PermPOSVoid, PermPOSRefund, PermPOSCashDrawer, PermPOSShiftClose},
		},
		{
			ID:          "orders",
			Name:        "Orders",
			Description: "Viewing, creating and changing orders.",
			Icon:        "receipt",
			Permissions: []Permission{PermOrderView, PermOrderCreate, PermOrderUpdate, PermOrderCancel},
		},
		{
			ID:          "products",
			Name:        "Products",
			Description: "The product list and pricing.",
			Icon:        "tag",
			Permissions: []Permission{PermProductView, PermProductCreate, PermProductUpdate, PermProductDelete},
		},
		{
			ID:          "inventory",
			Name:        "Inventory Management",
			Description: "Stock levels, adjustments, receiving and transfers.",
			Icon:        "boxes",
			Permissions: []Permission{PermInventoryView, PermInventoryManage, PermInventoryAdjust, PermInventoryReceive, PermInventoryTransfer},
		},
		{
			ID:          "customers",
			Name:        "Customers",
			Description: "Customer profiles and loyalty records.",
			Icon:        "users",
			Permissions: []Permission{PermCustomerView, PermCustomerCreate, PermCustomerUpdate, PermCustomerDelete},
		},
		{
			ID:          "service",
			Name:        "Kitchen & Floor",
			Description: "Kitchen display and table management.",
			Icon:        "utensils",
			Permissions: []Permission{PermKitchenView, PermKitchenUpdate, PermTableView, PermTableAssign},
		},
		{
			ID:          "reports",
			Name:        "Dashboard & Reports",
			Description: "Dashboards, sales reports and financial exports.",
			Icon:        "chart-bar",
			Permissions: []Permission{PermDashboardView, PermReportView, PermReportExport, PermReportFinancial},
		},
		{
			ID:          "users",
			Name:        "Users & Roles",
			Description: "Staff accounts and role assignment.",
			Icon:        "shield",
			Permissions: []Permission{PermUserView, PermUserCreate, PermUserUpdate, PermUserDelete, PermRoleView, PermRoleManage, PermRoleAssign},
		},
		{
			ID:          "settings",
			Name:        "Settings",
			Description: "Store configuration, hardware and the audit trail.",
			Icon:        "settings",
			Permissions: []Permission{PermSettingsView, PermSettingsManage, PermSettingsHardware, PermAuditView},
		},
	}
}
